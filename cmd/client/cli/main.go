package main

import (
	"context"
	"log"

	"github.com/physiofit/clinic/internal/client/cli"
	"github.com/physiofit/clinic/internal/client/config"
	"github.com/physiofit/clinic/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closer, err := logging.New(logging.Options{
		Backend: cfg.LogBackend,
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
	})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer closer.Close()

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
