package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"issuepick/internal/config"
	"issuepick/internal/domain"
	"issuepick/internal/eventbus"
	"issuepick/internal/issues"
	"issuepick/internal/ui"
	"issuepick/internal/ui/services/selection"
)

func main() {
	// Parse command line arguments
	var (
		issuesFile string
		configPath string
		logPath    string
		watch      bool
	)
	flag.StringVarP(&issuesFile, "file", "f", "", "Issue list to load (.json or .toml)")
	flag.StringVarP(&configPath, "config", "c", "", "Config file (default "+config.DefaultPath()+")")
	flag.StringVar(&logPath, "log", "", "Log file")
	flag.BoolVarP(&watch, "watch", "w", false, "Reload the issue list when the file changes")
	flag.Parse()

	// If no file specified, check for remaining args
	if issuesFile == "" && flag.NArg() > 0 {
		issuesFile = flag.Arg(0)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if issuesFile == "" {
		issuesFile = cfg.IssuesFile
	}
	if !flag.CommandLine.Changed("watch") {
		watch = cfg.Watch
	}
	if logPath == "" {
		logPath = cfg.LogFile
	}

	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load the issue list
	list, source, err := loadIssues(issuesFile)
	if err != nil {
		fmt.Printf("Error loading issues: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Loaded %d issues from %s", len(list), source)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Log selection changes
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionChangedEvent); ok {
			log.Printf("Selection changed: index=%d all=%v checked=%d/%d total=%d",
				event.Index, event.All, event.CheckedCount, event.EligibleCount, event.Total)
		}
	})

	svc := selection.NewService(bus)
	svc.Load(list)

	uiModel := ui.NewModel(cfg, svc, source)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Forward reloads and errors to the UI
	forwardEvent := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventIssuesLoaded, forwardEvent)
	bus.Subscribe(eventbus.EventError, forwardEvent)

	if watch && source != issues.SampleSource {
		watcher := issues.NewWatcher(source, bus)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				log.Printf("Watcher stopped: %v", err)
				bus.Publish(domain.ErrorEvent{Message: "watch disabled", Err: err})
			}
		}()
	}

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadIssues reads the issue file, or the built-in sample when path is empty
func loadIssues(path string) ([]domain.Issue, string, error) {
	if path == "" {
		return issues.Sample(), issues.SampleSource, nil
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve path: %w", err)
	}
	list, err := issues.Load(absPath)
	if err != nil {
		return nil, "", err
	}
	return list, absPath, nil
}
