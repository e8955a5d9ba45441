package timer

import (
	"fmt"
	"image/color"

	"workouttimer/internal/core/model"
	"workouttimer/internal/core/workout"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var accent = color.NRGBA{R: 40, G: 180, B: 120, A: 255}

// Window is the main workout view. It only reads engine snapshots and forwards taps.
type Window struct {
	window fyne.Window
	engine *workout.Engine

	clockText      *canvas.Text
	clockBox       *fyne.Container
	breakText      *canvas.Text
	breakBox       *fyne.Container
	setsText       *canvas.Text
	setsLabel      *widget.Label
	summaryLabel   *widget.Label
	timerMode      *widget.Button
	setsMode       *widget.Button
	playButton     *widget.Button
	adjustTitle    *widget.Label
	adjustValue    *widget.Label
	adjustUnit     *widget.Label
	minusButton    *widget.Button
	plusButton     *widget.Button
	breaksTitle    *widget.Label
	breakButtons   []*widget.Button
	endBreakButton *widget.Button
	concurrentNote *widget.Label
}

// New creates the workout window for engine with the given break presets.
func New(app fyne.App, engine *workout.Engine, breakOptions []model.BreakOption) *Window {
	view := &Window{
		window: app.NewWindow("Workout"),
		engine: engine,
	}
	if app.Icon() != nil {
		view.window.SetIcon(app.Icon())
	}

	view.clockText = canvas.NewText("--:--", theme.Color(theme.ColorNameForeground))
	view.clockText.TextSize = 56
	view.clockText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	view.clockText.Alignment = fyne.TextAlignCenter
	view.clockBox = container.NewVBox(view.clockText, widget.NewLabelWithStyle("Workout Timer", fyne.TextAlignCenter, fyne.TextStyle{}))

	view.breakText = canvas.NewText("--:--", accent)
	view.breakText.TextSize = 40
	view.breakText.TextStyle = fyne.TextStyle{Bold: true}
	view.breakText.Alignment = fyne.TextAlignCenter
	view.breakBox = container.NewVBox(view.breakText, widget.NewLabelWithStyle("Break Time", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))

	view.setsText = canvas.NewText("0", accent)
	view.setsText.TextSize = 28
	view.setsText.TextStyle = fyne.TextStyle{Bold: true}
	view.setsText.Alignment = fyne.TextAlignCenter
	view.setsLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	view.summaryLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	view.summaryLabel.Wrapping = fyne.TextWrapWord

	view.timerMode = widget.NewButtonWithIcon("Timer", theme.HistoryIcon(), func() {
		engine.SetMode(workout.ModeTimer)
	})
	view.setsMode = widget.NewButtonWithIcon("Sets", theme.ListIcon(), func() {
		engine.SetMode(workout.ModeSets)
	})

	view.playButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), engine.StartStop)
	resetButton := widget.NewButtonWithIcon("", theme.MediaReplayIcon(), engine.Reset)

	view.adjustTitle = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	view.adjustValue = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	view.adjustUnit = widget.NewLabel("")
	view.minusButton = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		adjust(engine, engine.State().Mode, -1)
	})
	view.plusButton = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		adjust(engine, engine.State().Mode, 1)
	})

	view.breaksTitle = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	breakGrid := container.NewGridWithColumns(2)
	for _, option := range breakOptions {
		seconds := option.Seconds
		button := widget.NewButton(fmt.Sprintf("%s  %ds", option.Label, seconds), func() {
			engine.StartBreak(seconds)
		})
		view.breakButtons = append(view.breakButtons, button)
		breakGrid.Add(button)
	}
	view.endBreakButton = widget.NewButton("End break", engine.EndBreak)
	view.concurrentNote = widget.NewLabelWithStyle("Main timer continues running during break", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	header := container.NewHBox(
		widget.NewLabelWithStyle("Workout", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		layout.NewSpacer(),
		view.timerMode,
		view.setsMode,
	)
	display := container.NewVBox(
		view.clockBox,
		view.breakBox,
		view.setsText,
		view.setsLabel,
		view.summaryLabel,
		container.NewCenter(container.NewHBox(view.playButton, resetButton)),
	)
	settings := container.NewVBox(
		view.adjustTitle,
		container.NewCenter(container.NewHBox(view.minusButton, view.adjustValue, view.adjustUnit, view.plusButton)),
	)
	breaks := container.NewVBox(view.breaksTitle, breakGrid, view.endBreakButton, view.concurrentNote)

	view.window.SetContent(container.NewVBox(
		header,
		widget.NewCard("", "", display),
		widget.NewCard("", "", settings),
		widget.NewCard("", "", breaks),
	))
	view.window.Resize(fyne.NewSize(380, 640))

	view.Refresh(engine.State())
	return view
}

// Window returns the underlying fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Watch refreshes the view for every engine event until events is closed.
func (view *Window) Watch(events <-chan workout.Event) {
	go func() {
		for event := range events {
			state := event.State
			fyne.Do(func() {
				view.Refresh(state)
			})
		}
	}()
}

// Refresh renders state. It must run on the fyne main goroutine.
func (view *Window) Refresh(state workout.State) {
	vm := newViewModel(state)

	view.clockText.Text = vm.Clock
	if state.Complete() {
		view.clockText.Color = accent
	} else {
		view.clockText.Color = theme.Color(theme.ColorNameForeground)
	}
	view.clockText.Refresh()
	setVisible(view.clockBox, vm.ClockVisible)

	view.breakText.Text = vm.BreakClock
	view.breakText.Refresh()
	setVisible(view.breakBox, vm.BreakVisible)

	view.setsText.Text = vm.Sets
	view.setsText.Refresh()
	view.setsLabel.SetText(vm.SetsLabel)
	view.summaryLabel.SetText(vm.Summary)
	setVisible(view.summaryLabel, vm.Summary != "")

	view.playButton.SetText(vm.PlayLabel)
	if state.IsRunning {
		view.playButton.SetIcon(theme.MediaPauseIcon())
	} else {
		view.playButton.SetIcon(theme.MediaPlayIcon())
	}
	setEnabled(view.playButton, vm.PlayEnabled)

	setEnabled(view.timerMode, vm.ModeEnabled)
	setEnabled(view.setsMode, vm.ModeEnabled)
	if state.Mode == workout.ModeTimer {
		view.timerMode.Importance = widget.HighImportance
		view.setsMode.Importance = widget.MediumImportance
	} else {
		view.timerMode.Importance = widget.MediumImportance
		view.setsMode.Importance = widget.HighImportance
	}
	view.timerMode.Refresh()
	view.setsMode.Refresh()

	view.adjustTitle.SetText(vm.AdjustTitle)
	view.adjustValue.SetText(vm.AdjustValue)
	view.adjustUnit.SetText(vm.AdjustUnit)
	setEnabled(view.minusButton, vm.AdjustEnabled)
	setEnabled(view.plusButton, vm.AdjustEnabled)

	view.breaksTitle.SetText(vm.BreaksTitle)
	for _, button := range view.breakButtons {
		setEnabled(button, vm.BreaksEnabled)
	}
	setVisible(view.endBreakButton, state.IsOnBreak)
	setVisible(view.concurrentNote, vm.ConcurrentNote)
}

// ToggleMode switches between Timer and Sets.
func (view *Window) ToggleMode() {
	view.engine.SetMode(otherMode(view.engine.State().Mode))
}

func setEnabled(button *widget.Button, enabled bool) {
	if enabled {
		button.Enable()
		return
	}
	button.Disable()
}

func setVisible(object fyne.CanvasObject, visible bool) {
	if visible {
		object.Show()
		return
	}
	object.Hide()
}
