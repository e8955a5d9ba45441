package main

import (
	"errors"
	"fmt"
	"os"

	"workouttimer/internal/config"
	"workouttimer/internal/core/clock"
	"workouttimer/internal/core/workout"
	"workouttimer/internal/logger"
	"workouttimer/internal/notify"
	"workouttimer/internal/platform"
	"workouttimer/internal/storage"
	"workouttimer/internal/ui/preferences"
	"workouttimer/internal/ui/timer"
	"workouttimer/internal/ui/tray"
	"workouttimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appID = "com.workouttimer.app"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "workout timer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".", os.Getenv("WORKOUT_CONFIG_DIR"))
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	guard, err := platform.AcquireSingleInstance(cfg.Settings.AppName)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		log.Infow("another instance is running", "error", err)
		return nil
	}
	if err != nil {
		return err
	}
	defer func() { _ = guard.Release() }()

	settings, err := storage.LoadSettings(cfg.Settings.AppName)
	if err != nil {
		log.Warnw("using default settings", "error", err)
	}

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.AppIcon())

	cue := notify.NewSoundCue(resources.BreakFinishedSound())
	cue.SetEnabled(settings.SoundEnabled)
	cue.SetVolume(settings.SoundVolume)

	notifier := notify.NewDesktopNotifier(cfg.Settings.AppName, fyneApp, resources.AppIcon().Content(), log.Named("notify"))
	permission := notifier.Init(settings.NotificationsEnabled)
	log.Infow("notifications", "permission", permission)

	gateway := notify.NewGateway(cue, notifier, log.Named("gateway"))
	engine := workout.New(settings.WorkoutConfig(), workout.Options{
		Gateway: gateway,
		Logger:  log.Named("workout"),
	})
	driver := clock.New(engine, clock.Options{
		Interval: cfg.Clock.Interval,
		Logger:   log.Named("clock"),
	})
	engine.OnActivityChange(driver.Sync)

	mainWindow := timer.New(fyneApp, engine, settings.BreakOptions)
	mainWindow.Watch(engine.Subscribe(16))
	guard.OnActivate(func() {
		fyne.Do(mainWindow.Show)
	})

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if err := storage.SaveSettings(cfg.Settings.AppName, updated); err != nil {
			log.Errorw("save settings", "error", err)
		}
		cue.SetEnabled(updated.SoundEnabled)
		cue.SetVolume(updated.SoundVolume)
		notifier.Init(updated.NotificationsEnabled)
		workoutConfig := updated.WorkoutConfig()
		engine.SetTimerDuration(workoutConfig.TimerDurationSeconds)
		engine.SetTargetSets(workoutConfig.TargetSets)
	})

	quit := func() {
		driver.Close()
		engine.Close()
		gateway.Wait()
		fyneApp.Quit()
	}

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		mainWindow.Window().SetCloseIntercept(mainWindow.Window().Hide)
		desktopApp.SetSystemTrayIcon(resources.AppIcon())
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShow:        mainWindow.Show,
			OnPreferences: prefsWindow.Show,
			OnStartStop:   engine.StartStop,
			OnReset:       engine.Reset,
			OnToggleMode:  mainWindow.ToggleMode,
			OnBreak:       engine.StartBreak,
			OnEndBreak:    engine.EndBreak,
			OnQuit:        quit,
		}, settings.BreakOptions)
		watchTray(engine.Subscribe(16), trayManager)
	} else {
		log.Infow("system tray unsupported on this platform")
		mainWindow.Window().SetOnClosed(quit)
	}

	mainWindow.Show()
	fyneApp.Run()
	return nil
}

func watchTray(events <-chan workout.Event, trayManager *tray.Manager) {
	go func() {
		for event := range events {
			state := event.State
			fyne.Do(func() {
				trayManager.SetState(state.IsRunning, state.IsOnBreak)
				trayManager.SetStatus(timer.StatusLine(state))
			})
		}
	}()
}
