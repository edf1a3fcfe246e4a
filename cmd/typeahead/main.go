package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"typeahead/internal/config"
	"typeahead/internal/eventbus"
	"typeahead/internal/ui"
)

func main() {
	var configPath string
	var debug bool
	flag.StringVar(&configPath, "config", "", "Path to a config file")
	flag.StringVar(&configPath, "c", "", "Path to a config file (shorthand)")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	if debug {
		log.SetLevel(log.DebugLevel)
	}

	// Load configuration
	configSvc := config.NewConfigService()
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg, err = configSvc.Load()
		if err != nil {
			log.Warn("falling back to default config", "err", err)
			cfg = config.DefaultConfig()
		}
	}

	// Logs go to a file so they don't fight the TUI for the terminal
	if cfg.Demo.LogFile != "" {
		logFile, err := os.OpenFile(cfg.Demo.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Warn("could not open log file", "err", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Create UI model with its bound widgets
	uiModel, err := ui.NewModel(cfg, bus)
	if err != nil {
		fmt.Printf("Error creating UI: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Forward domain events to the UI's status line
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warn("event channel full, dropping event", "type", e.Type())
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventSearchStarted,
		eventbus.EventSearchCompleted,
		eventbus.EventSearchDiscarded,
		eventbus.EventSearchFailed,
		eventbus.EventSuggestionCommitted,
		eventbus.EventFieldCleared,
		eventbus.EventListDismissed,
		eventbus.EventInstanceBound,
		eventbus.EventInstanceDestroyed,
	} {
		bus.Subscribe(t, forward)
	}

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Close waits for the dispatcher, so no forward is in flight once the
	// channel closes
	bus.Close()
	close(eventChan)
}
