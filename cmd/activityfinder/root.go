package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"activityfinder/internal/config"
	"activityfinder/internal/domain"
	"activityfinder/internal/eventbus"
	"activityfinder/internal/logging"
	"activityfinder/internal/provider"
	"activityfinder/internal/ui"
)

// rootOptions holds the command line flags shared by all commands
type rootOptions struct {
	configPath string
	endpoint   string
	query      string
	location   string
	logFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "activityfinder",
		Short: "Discover events and activities from your terminal",
		Long: `activityfinder searches an activity provider for events matching what
you are looking for and where, and lets you narrow the results by category
and time window.

Configuration is read from $XDG_CONFIG_HOME/activityfinder/config.toml and
can be overridden with ACTIVITYFINDER_* environment variables or a .env file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd.Context(), opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/activityfinder/config.toml)")
	flags.StringVar(&opts.endpoint, "endpoint", "", "activity provider base URL")
	flags.StringVar(&opts.logFile, "log-file", "", "log file (default "+logging.DefaultFile+")")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "search immediately for this query")
	cmd.Flags().StringVarP(&opts.location, "location", "l", "", "search immediately in this location")

	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

// loadConfig reads the config file and applies .env, environment and flag overrides
func loadConfig(opts *rootOptions) (*config.Config, config.ConfigService, error) {
	// A missing .env file is fine
	_ = godotenv.Load()

	svc := config.NewConfigService(opts.configPath, nil)
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.ApplyEnviron(cfg); err != nil {
		return nil, nil, err
	}

	if opts.endpoint != "" {
		cfg.Provider.Endpoint = opts.endpoint
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, svc, nil
}

func runUI(ctx context.Context, opts *rootOptions) error {
	cfg, svc, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closeLog, logErr := openLogger(cfg)
	defer func() { _ = closeLog() }()

	if ctx == nil {
		ctx = context.Background()
	}
	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New(logger)
	defer bus.Close()
	unsubscribeAudit := subscribeAudit(bus, logger.Named("audit"))
	defer unsubscribeAudit()
	bus.Publish(domain.ConfigLoadedEvent{Path: svc.Path()})

	client, err := provider.NewClient(cfg.Provider.Endpoint,
		provider.WithLogger(logger),
		provider.WithRateLimiter(provider.NewLimiter(cfg.Provider.RateLimit, cfg.Provider.Burst)),
	)
	if err != nil {
		return err
	}
	logger.Infow("starting", "endpoint", client.Endpoint(), "discard_stale", cfg.Search.DiscardStale)

	model := ui.NewModel(ctx, cfg, client, bus, logger)
	model.SetInitialSearch(opts.query, opts.location)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	unsubscribeErrors := forwardErrors(bus, p.Send)
	defer unsubscribeErrors()
	if logErr != nil {
		bus.Publish(domain.ErrorEvent{Message: "Logging disabled: " + logErr.Error(), Err: logErr})
	}

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Infow("exiting")
	return nil
}

// openLogger opens the configured log file. When that fails it falls back to a
// no-op logger and returns the open error alongside it.
func openLogger(cfg *config.Config) (*zap.SugaredLogger, func() error, error) {
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = logging.DefaultFile
	}
	logger, closeLog, err := logging.NewFileLogger(logFile, cfg.Log.Level)
	if err != nil {
		return logging.Nop(), func() error { return nil }, fmt.Errorf("could not open log file: %w", err)
	}
	return logger, closeLog, nil
}

// forwardErrors sends every ErrorEvent to the UI so it lands in the status bar
func forwardErrors(bus eventbus.EventBus, send func(tea.Msg)) func() {
	return bus.Subscribe(domain.EventError, func(e eventbus.DomainEvent) {
		send(ui.EventMsg{Event: e})
	})
}

// subscribeAudit writes the domain events to the audit log
func subscribeAudit(bus eventbus.EventBus, logger *zap.SugaredLogger) func() {
	audited := []domain.EventType{
		domain.EventSearchDispatched,
		domain.EventSearchSucceeded,
		domain.EventSearchFailed,
		domain.EventSearchDiscarded,
		domain.EventFiltersChanged,
		domain.EventQuickSearchRequested,
		domain.EventActivitySelected,
		domain.EventDetailClosed,
		domain.EventSelectionRejected,
		domain.EventConfigLoaded,
		domain.EventError,
	}

	unsubscribes := make([]func(), 0, len(audited))
	for _, t := range audited {
		unsubscribes = append(unsubscribes, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			logger.Debugw("event", "type", e.Type(), "event", fmt.Sprintf("%+v", e))
		}))
	}
	return func() {
		for _, unsubscribe := range unsubscribes {
			unsubscribe()
		}
	}
}
