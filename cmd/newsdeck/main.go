package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/ryosukesatoh/newsdeck/internal/config"
	"github.com/ryosukesatoh/newsdeck/internal/newsapi"
	"github.com/ryosukesatoh/newsdeck/internal/tui"
	"github.com/ryosukesatoh/newsdeck/internal/watch"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	query := flag.String("query", "", "run one search for this topic and exit")
	watchMode := flag.Bool("watch", false, "run the configured search on a schedule and print each batch")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	headless := *query != "" || *watchMode
	logger := newLogger(cfg, headless)

	cleaner := newsapi.NewSummaryCleaner(cfg.SummaryPrefixes)
	gateway := newsapi.NewClient(cfg.BaseURL, cfg.Timeout(), cleaner, logger)

	// One-shot mode: run a single search and exit.
	if *query != "" {
		q := cfg.Query()
		q.Topic = *query
		runner := watch.New(q, gateway, os.Stdout, logger)
		if err := runner.Run(context.Background()); err != nil {
			logger.Fatal().Err(err).Msg("search failed")
		}
		return
	}

	if *watchMode {
		runWatch(cfg, gateway, logger)
		return
	}

	p := tea.NewProgram(
		tui.New(gateway, cfg.Query(), cfg.Timeout(), logger),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func runWatch(cfg *config.Config, gateway newsapi.Searcher, logger zerolog.Logger) {
	if cfg.Topic == "" {
		logger.Fatal().Msg("watch mode requires a topic in the config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner := watch.New(cfg.Query(), gateway, os.Stdout, logger)

	// Run immediately on startup, then on the schedule.
	if err := runner.Run(ctx); err != nil {
		logger.Warn().Err(err).Msg("initial run failed")
	}

	c := cron.New()
	_, err := c.AddFunc(cfg.Schedule, func() {
		if err := runner.Run(ctx); err != nil {
			logger.Warn().Err(err).Msg("scheduled run failed")
		}
	})
	if err != nil {
		logger.Fatal().Err(err).Str("schedule", cfg.Schedule).Msg("failed to set up cron schedule")
	}
	c.Start()
	logger.Info().Str("schedule", cfg.Schedule).Str("topic", cfg.Topic).Msg("watching")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info().Str("signal", sig.String()).Msg("shutting down")

	cancel()
	c.Stop()
}

// newLogger picks the log destination: stderr for headless modes, the
// configured file (or nothing) in TUI mode, where stderr would corrupt the
// screen.
func newLogger(cfg *config.Config, headless bool) zerolog.Logger {
	if headless {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	if cfg.LogFile == "" {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}
