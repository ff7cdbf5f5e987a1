// cmd/game/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"circle-slide/internal/app"
	"circle-slide/internal/config"
	"circle-slide/internal/host"
	"circle-slide/internal/logging"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		cfgPath  string
		logLevel string
		headless bool
		hc       app.HeadlessConfig
	)
	flag.StringVar(&cfgPath, "config", "", "Path to a TOML config file (defaults are built in).")
	flag.StringVar(&logLevel, "log-level", "", "Override logging level (debug, info, warn, error).")
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hc.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&hc.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run until interrupted).")
	flag.Uint64Var(&hc.ClickEvery, "click-every", 0, "Simulate a left click every N frames in headless mode.")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := app.RunHeadless(ctx, cfg, log, hc)
		if errors.Is(err, context.Canceled) {
			log.Info("interrupted")
			return nil
		}
		return err
	}

	if err := host.RunWindow(cfg, log); err != nil {
		log.Error("window failed", zap.Error(err))
		return err
	}
	return nil
}
