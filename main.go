package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"avs-spammer-go/config"
	"avs-spammer-go/spammer"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		// No valid submission is possible without a key; abort instead
		// of ticking uselessly.
		log.Error("failed to retrieve private key", "err", err)
		os.Exit(1)
	}

	sp, err := spammer.New(cfg)
	if err != nil {
		log.Error("failed to set up task spammer", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("creating tasks", "provider", cfg.Provider, "interval", cfg.TaskInterval)
	if err := spammer.NewScheduler(sp, cfg.TaskInterval, log).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("scheduler stopped", "err", err)
		os.Exit(1)
	}
}
