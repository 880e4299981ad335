package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ariahq/aria/adapter/cli"
	"github.com/ariahq/aria/internal/app"
	"github.com/ariahq/aria/pkg/config"
	"github.com/ariahq/aria/pkg/observability"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{AppEnv: "development"}
	}

	logCfg := observability.DefaultLogConfig()
	logCfg.Level = observability.LogLevel(cfg.LogLevel)
	if !cfg.IsDevelopment() {
		logCfg.Format = observability.LogFormatJSON
	}
	logger := observability.NewLogger(logCfg)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	cli.SetContainer(container)
	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
