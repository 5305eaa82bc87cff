package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"burrow/internal/config"
	"burrow/internal/enum"
	"burrow/internal/eventbus"
	"burrow/internal/logging"
	"burrow/internal/ui"
)

func main() {
	var startDir string
	var logPath string
	var configPath string
	flag.StringVar(&startDir, "dir", "", "Directory to start in")
	flag.StringVar(&startDir, "d", "", "Directory to start in (shorthand)")
	flag.StringVar(&logPath, "log", "", "Diagnostic log file")
	flag.StringVar(&configPath, "config", "", "Config file path")
	flag.Parse()

	if startDir == "" && flag.NArg() > 0 {
		startDir = flag.Arg(0)
	}
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting current directory: %v\n", err)
			os.Exit(1)
		}
	}

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving path: %v\n", err)
		os.Exit(1)
	}
	if info, err := os.Stat(absDir); err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Not a directory: %s\n", absDir)
		os.Exit(1)
	}

	if err := logging.Init(logPath); err != nil {
		// Diagnostics are optional; the session works without them.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer logging.Close()

	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		logging.Logger.Error("config load failed, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	bus := eventbus.New()

	enumSvc := enum.NewService(bus, cfg.Enumerator)

	uiModel := ui.NewModel(bus, cfg, absDir)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward feed events into the program. Sends block rather than
	// drop: losing listing lines is worse than briefly pausing the
	// producer.
	eventChan := make(chan eventbus.DomainEvent, 256)
	forward := func(e eventbus.DomainEvent) {
		eventChan <- e
	}
	bus.Subscribe(eventbus.EventEnumStarted, forward)
	bus.Subscribe(eventbus.EventEntriesFoundBatch, forward)
	bus.Subscribe(eventbus.EventEnumCompleted, forward)
	bus.Subscribe(eventbus.EventError, forward)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	logging.Logger.Info("starting", "dir", absDir, "enumerator", cfg.Enumerator.Command)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	enumSvc.Stop()
	bus.Close()
}
