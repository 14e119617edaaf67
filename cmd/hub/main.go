package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kazakovdmitriy/go-weather-hub/internal/app"
	"github.com/kazakovdmitriy/go-weather-hub/internal/config"
	"github.com/kazakovdmitriy/go-weather-hub/internal/logger"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.ParseHubConfig(args)
	if err != nil {
		return err
	}

	log, err := logger.Initialize(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := app.NewApp(cfg, log).Run(ctx); err != nil {
		log.Error("hub stopped with error", zap.Error(err))
		return err
	}

	log.Info("hub stopped")
	return nil
}
