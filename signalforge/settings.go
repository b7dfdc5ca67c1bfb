package main

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// showSettingsDialog displays a settings dialog with tabs for the display options.
func showSettingsDialog(state *appState) {
	tabs := container.NewAppTabs(
		createAnimationTab(state),
		createDisplayTab(state),
	)

	content := container.NewBorder(nil, nil, nil, nil, tabs)
	content.Resize(fyne.NewSize(480, 320))

	d := dialog.NewCustom("Settings", "Close", content, state.window)
	d.Resize(fyne.NewSize(480, 320))
	d.Show()
}

// createAnimationTab edits the counter ADC timing animation.
func createAnimationTab(state *appState) *container.TabItem {
	intervalEntry := widget.NewEntry()
	intervalEntry.SetText(state.cfg.Display.StepInterval.String())

	maxStepsEntry := widget.NewEntry()
	maxStepsEntry.SetText(fmt.Sprintf("%d", state.cfg.Display.MaxAnimSteps))

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Step Interval", Widget: intervalEntry},
			{Text: "Max Animated Steps", Widget: maxStepsEntry},
		},
		OnSubmit: func() {
			restart := false
			if d, err := time.ParseDuration(intervalEntry.Text); err == nil && d > 0 {
				restart = d != state.cfg.Display.StepInterval
				state.cfg.Display.StepInterval = d
			}
			if n, err := strconv.Atoi(maxStepsEntry.Text); err == nil && n > 0 {
				state.cfg.Display.MaxAnimSteps = n
			}
			if err := state.cfg.Save(state.cfgPath); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save config: %w", err), state.window)
			}

			if restart {
				state.startAnimation()
			} else {
				state.counter.recompute()
			}
		},
	}

	return container.NewTabItem("Animation", form)
}

// createDisplayTab edits the scope and comparator grid limits.
func createDisplayTab(state *appState) *container.TabItem {
	comparatorsEntry := widget.NewEntry()
	comparatorsEntry.SetText(fmt.Sprintf("%d", state.cfg.Display.MaxComparators))

	frameEntry := widget.NewEntry()
	frameEntry.SetText(state.cfg.Display.FrameInterval.String())

	historyEntry := widget.NewEntry()
	historyEntry.SetText(fmt.Sprintf("%d", state.cfg.Display.HistoryPoints))

	pointsEntry := widget.NewEntry()
	pointsEntry.SetText(fmt.Sprintf("%d", state.cfg.Display.MaxDisplayPoints))

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Max Comparators Drawn", Widget: comparatorsEntry},
			{Text: "Frame Interval (restart)", Widget: frameEntry},
			{Text: "Scope History (restart)", Widget: historyEntry},
			{Text: "Max Display Points (restart)", Widget: pointsEntry},
		},
		OnSubmit: func() {
			if n, err := strconv.Atoi(comparatorsEntry.Text); err == nil && n >= 0 {
				state.cfg.Display.MaxComparators = n
			}
			if d, err := time.ParseDuration(frameEntry.Text); err == nil && d > 0 {
				state.cfg.Display.FrameInterval = d
			}
			if n, err := strconv.Atoi(historyEntry.Text); err == nil && n > 0 {
				state.cfg.Display.HistoryPoints = n
			}
			if n, err := strconv.Atoi(pointsEntry.Text); err == nil && n > 0 {
				state.cfg.Display.MaxDisplayPoints = n
			}
			if err := state.cfg.Save(state.cfgPath); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save config: %w", err), state.window)
			}
			state.flash.recompute()
		},
	}

	return container.NewTabItem("Display", form)
}
