package preferences

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	timerMinutes  *widget.Entry
	targetSets    *widget.Entry
	startSets     *widget.Check
	soundCheck    *widget.Check
	volume        *widget.Slider
	notifications *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Workout Settings")

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		timerMinutes:  widget.NewEntry(),
		targetSets:    widget.NewEntry(),
		startSets:     widget.NewCheck("Start in sets mode", nil),
		soundCheck:    widget.NewCheck("Play a sound when a break ends", nil),
		volume:        widget.NewSlider(0, 1),
		notifications: widget.NewCheck("Show a notification when a break ends", nil),
	}
	prefs.volume.Step = 0.05
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Workout", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Timer duration"), prefs.timerMinutes, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Target sets"), prefs.targetSets),
		prefs.startSets,
		widget.NewLabelWithStyle("Break finished", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.soundCheck,
		widget.NewLabel("Volume"),
		prefs.volume,
		prefs.notifications,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", window.Hide)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 360))
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.timerMinutes.SetText(fmt.Sprintf("%d", settings.TimerDurationMinutes))
	prefs.targetSets.SetText(fmt.Sprintf("%d", settings.TargetSets))
	prefs.startSets.SetChecked(settings.StartInSetsMode)
	prefs.soundCheck.SetChecked(settings.SoundEnabled)
	prefs.volume.SetValue(settings.SoundVolume)
	prefs.notifications.SetChecked(settings.NotificationsEnabled)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.timerMinutes.Text); ok {
		settings.TimerDurationMinutes = minutes
	}
	if sets, ok := parsePositiveInt(prefs.targetSets.Text); ok {
		settings.TargetSets = sets
	}
	settings.StartInSetsMode = prefs.startSets.Checked
	settings.SoundEnabled = prefs.soundCheck.Checked
	settings.SoundVolume = prefs.volume.Value
	settings.NotificationsEnabled = prefs.notifications.Checked

	settings = settings.Normalize()
	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
