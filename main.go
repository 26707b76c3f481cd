package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"synthmenu/config"
	"synthmenu/debug"
	"synthmenu/menu"
	"synthmenu/midi"
	"synthmenu/theme"
	"synthmenu/tui"
)

func main() {
	if os.Getenv("SYNTHMENU_DEBUG") != "" {
		debug.Enable()
		defer debug.Disable()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("config: %v\n", err)
		os.Exit(1)
	}

	th := theme.New(theme.LoadGPLOrDefault(cfg.UI.Palette))

	// Build the patch menu: two oscillator voices plus global sections.
	patch := menu.NewPatch("Patch", 16)
	root := menu.NewMenu("Synth", []menu.Item{
		patch,
		voiceGroup("Osc 1"),
		voiceGroup("Osc 2"),
		menu.NewLFO("Vibrato"),
		menu.NewSequence("Arp Steps", 16),
		menu.NewGroup("Global", []menu.Item{
			menu.NewTimeRange("Glide", 0.05, 0, 0, 2),
			menu.NewBool("Mono", false),
			menu.NewList("Velocity Curve", []string{"Linear", "Soft", "Hard"}, 0),
		}),
	})
	root.SetLoop(true)

	// Create MIDI device manager (handles hot-plug of configured surfaces)
	deviceMgr := midi.NewDeviceManager(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go deviceMgr.Run(ctx)

	fmt.Println("synthmenu")
	fmt.Println("Connect a configured control surface any time - it will be detected automatically")
	fmt.Println("")

	m := tui.NewModel(root, patch, deviceMgr, th)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// voiceGroup assembles the full control set of one oscillator voice.
func voiceGroup(title string) *menu.Group {
	return menu.NewGroup(title, []menu.Item{
		menu.NewWaveform("Waveform", menu.Waveforms(), 256),
		menu.NewADSREnvelope("Amp Envelope"),
		menu.NewAREnvelope("Filter Envelope"),
		menu.NewFilter("Filter"),
		menu.NewLFO("LFO"),
		menu.NewMix("Mix"),
		menu.NewTune("Tune"),
	})
}
