package tray

import (
	"fmt"

	"workouttimer/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const menuTitle = "Workout"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnPreferences func()
	OnStartStop   func()
	OnReset       func()
	OnToggleMode  func()
	OnBreak       func(seconds int)
	OnEndBreak    func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	callbacks   Callbacks
	statusItem  *fyne.MenuItem
	startItem   *fyne.MenuItem
	modeItem    *fyne.MenuItem
	breakMenu   *fyne.MenuItem
	endBreak    *fyne.MenuItem
	running     bool
	onBreak     bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks and break presets.
func New(app desktop.App, callbacks Callbacks, breakOptions []model.BreakOption) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "ready",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.startItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnStartStop != nil {
			manager.callbacks.OnStartStop()
		}
	})

	manager.modeItem = fyne.NewMenuItem("Switch mode", func() {
		if manager.callbacks.OnToggleMode != nil {
			manager.callbacks.OnToggleMode()
		}
	})

	breakItems := make([]*fyne.MenuItem, 0, len(breakOptions))
	for _, option := range breakOptions {
		seconds := option.Seconds
		breakItems = append(breakItems, fyne.NewMenuItem(fmt.Sprintf("%s (%ds)", option.Label, seconds), func() {
			if manager.callbacks.OnBreak != nil {
				manager.callbacks.OnBreak(seconds)
			}
		}))
	}
	manager.breakMenu = fyne.NewMenuItem("Take a break", nil)
	manager.breakMenu.ChildMenu = fyne.NewMenu("", breakItems...)
	manager.breakMenu.Disabled = true

	manager.endBreak = fyne.NewMenuItem("End break", func() {
		if manager.callbacks.OnEndBreak != nil {
			manager.callbacks.OnEndBreak()
		}
	})
	manager.endBreak.Disabled = true

	manager.refreshStatus()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetState updates the running and break dependent items.
func (manager *Manager) SetState(running, onBreak bool) {
	if manager.running == running && manager.onBreak == onBreak {
		return
	}
	manager.running = running
	manager.onBreak = onBreak
	if running {
		manager.startItem.Label = "Pause"
	} else {
		manager.startItem.Label = "Start"
	}
	manager.startItem.Disabled = onBreak
	manager.modeItem.Disabled = running || onBreak
	manager.breakMenu.Disabled = !running || onBreak
	manager.endBreak.Disabled = !onBreak
	manager.refreshMenu()
}

func (manager *Manager) refreshStatus() {
	manager.statusItem.Label = fmt.Sprintf("Status: %s", manager.statusLabel)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Show workout", manager.call(manager.callbacks.OnShow)),
		fyne.NewMenuItemSeparator(),
		manager.startItem,
		manager.breakMenu,
		manager.endBreak,
		fyne.NewMenuItem("Reset", manager.call(manager.callbacks.OnReset)),
		manager.modeItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", manager.call(manager.callbacks.OnPreferences)),
		fyne.NewMenuItem("Quit", manager.call(manager.callbacks.OnQuit)),
	))
}

func (manager *Manager) call(fn func()) func() {
	return func() {
		if fn != nil {
			fn()
		}
	}
}
