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
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"spotlight/internal/config"
	"spotlight/internal/discovery"
	"spotlight/internal/eventbus"
	"spotlight/internal/ranking"
	"spotlight/internal/ui"
)

var (
	configPath string
	maxDepth   int
	noPreview  bool
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "spotlight [dir]",
	Short: "Find and preview files from the terminal",
	Long: `spotlight scans a directory tree and lets you pick a file by typing
part of its path. Results are ranked as you type; the selected file is
previewed below the list and enter opens it in a pager.`,
	Example: `
# Search the current directory
spotlight

# Search a project, two levels deep
spotlight ~/src/project --max-depth 2
  `,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		closeLog := setupLogging(debug)
		defer closeLog()

		bus := eventbus.New()
		defer bus.Close()
		events := forwardEvents(bus)

		configSvc := config.NewConfigService(configPath, bus)
		cfg, err := configSvc.Load()
		if err != nil {
			log.Printf("Error loading config: %v", err)
			return err
		}
		if cmd.Flags().Changed("max-depth") {
			cfg.Scan.MaxDepth = maxDepth
		}
		if noPreview {
			cfg.UI.ShowPreview = false
		}

		roots, err := scanRoots(args, cfg)
		if err != nil {
			return err
		}

		return run(cmd.Context(), bus, events, cfg, roots)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default "+config.DefaultPath()+")")
	rootCmd.Flags().IntVarP(&maxDepth, "max-depth", "d", 0, "Maximum directory depth to scan (0 for unlimited)")
	rootCmd.Flags().BoolVar(&noPreview, "no-preview", false, "Hide the preview pane")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log source locations")

	rootCmd.AddCommand(configCmd)
}

// scanRoots picks the directories to scan: the argument, then the
// configured roots, then the working directory.
func scanRoots(args []string, cfg *config.Config) ([]string, error) {
	roots := cfg.Roots
	if len(args) > 0 {
		roots = args[:1]
	}
	if len(roots) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		roots = []string{wd}
	}

	abs := make([]string, 0, len(roots))
	for _, root := range roots {
		path, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot scan %s: %w", root, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("cannot scan %s: not a directory", root)
		}
		abs = append(abs, path)
	}
	return abs, nil
}

// setupLogging sends the log to a rotating file; the terminal belongs to
// the UI.
func setupLogging(debug bool) func() {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	logger := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "spotlight", "spotlight.log"),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	log.SetOutput(logger)
	if debug {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	}
	return func() {
		log.SetOutput(os.Stderr)
		_ = logger.Close()
	}
}

// forwardEvents subscribes to the events the UI shows. They are buffered
// until the program starts reading them.
func forwardEvents(bus eventbus.EventBus) chan eventbus.DomainEvent {
	eventChan := make(chan eventbus.DomainEvent, 1000)
	forward := func(e eventbus.DomainEvent) {
		eventChan <- e
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventConfigLoaded,
		eventbus.EventScanStarted,
		eventbus.EventEntryDiscovered,
		eventbus.EventScanCompleted,
		eventbus.EventError,
	} {
		bus.Subscribe(t, forward)
	}
	return eventChan
}

func run(parent context.Context, bus eventbus.EventBus, eventChan chan eventbus.DomainEvent, cfg *config.Config, roots []string) error {
	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	index := ranking.NewIndex()
	discoverySvc := discovery.NewDiscoveryService(bus, cfg.ScanOptions())

	uiModel := ui.NewModel(cfg, index)
	uiModel.SetScanner(ctx, discoverySvc)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	if err := discoverySvc.StartScan(ctx, roots); err != nil {
		log.Printf("Failed to start scan: %v", err)
	}

	log.Printf("Starting UI on %v", roots)
	_, err := p.Run()

	// Cleanup
	discoverySvc.StopScan()
	bus.Close()
	close(eventChan)

	if err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}
