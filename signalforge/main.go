package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/signalforge/pkg/config"
	"github.com/itohio/signalforge/pkg/timing"
)

func main() {
	var (
		configFlag = flag.String("config", "config.yaml", "Configuration file path")
		tabFlag    = flag.String("tab", "dac", "Initial section: dac, adc or theory")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	application := app.NewWithID("com.itohio.signalforge")

	window := application.NewWindow("SignalForge Converter Lab")
	window.Resize(fyne.NewSize(1200, 860))
	window.CenterOnScreen()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	state := &appState{
		ctx:     ctx,
		cfg:     cfg,
		cfgPath: *configFlag,
		window:  window,
	}

	state.weighted = newWeightedPanel(state)
	state.r2r = newR2RPanel(state)
	state.counter = newCounterPanel(state)
	state.flash = newFlashPanel(state)
	state.startAnimation()

	dacTabs := container.NewAppTabs(
		container.NewTabItem("Weighted-Resistor", container.NewVScroll(state.weighted.content)),
		container.NewTabItem("R-2R Ladder", container.NewVScroll(state.r2r.content)),
	)
	adcTabs := container.NewAppTabs(
		container.NewTabItem("Counter-Type", container.NewVScroll(state.counter.content)),
		container.NewTabItem("Flash", container.NewVScroll(state.flash.content)),
	)

	sections := container.NewAppTabs(
		container.NewTabItem("DAC", dacTabs),
		container.NewTabItem("ADC", adcTabs),
		container.NewTabItem("Theory", newTheoryTab()),
	)
	switch *tabFlag {
	case "adc":
		sections.SelectIndex(1)
	case "theory":
		sections.SelectIndex(2)
	}

	window.SetContent(container.NewBorder(createToolbar(state), nil, nil, nil, sections))
	window.ShowAndRun()
}

// appState holds the application state.
type appState struct {
	ctx     context.Context
	cfg     *config.Config
	cfgPath string
	window  fyne.Window

	weighted *weightedPanel
	r2r      *r2rPanel
	counter  *counterPanel
	flash    *flashPanel

	// Counter ADC step animation; replaced when the interval changes
	animator   *timing.Animator
	stopAnimFn context.CancelFunc
}

// createToolbar creates the toolbar with Save and Settings buttons.
func createToolbar(state *appState) fyne.CanvasObject {
	saveBtn := widget.NewButtonWithIcon("", theme.DocumentSaveIcon(), func() {
		saveConfig(state)
	})
	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		showSettingsDialog(state)
	})

	title := widget.NewLabelWithStyle("SignalForge Laboratory", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	return container.NewBorder(nil, nil, title, container.NewHBox(saveBtn, settingsBtn), nil)
}

// saveConfig writes the current parameter snapshot to the config file.
func saveConfig(state *appState) {
	if err := state.cfg.Save(state.cfgPath); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save config: %w", err), state.window)
		return
	}
	log.Printf("Saved configuration to %s", state.cfgPath)
}

// startAnimation (re)starts the counter ADC step animator with the
// configured interval. The previous animator, if any, is stopped.
func (s *appState) startAnimation() {
	if s.stopAnimFn != nil {
		s.stopAnimFn()
	}

	a := timing.New(s.cfg.Display.StepInterval)
	a.OnStep(func(step, steps int) {
		fyne.Do(func() {
			s.counter.diagram.SetStep(step)
		})
	})
	s.animator = a
	s.counter.recompute()

	ctx, cancel := context.WithCancel(s.ctx)
	s.stopAnimFn = cancel
	go a.Run(ctx)
}
