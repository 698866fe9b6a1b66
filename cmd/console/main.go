package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ctchen222/minimax-tictactoe/internal/bot"
	"ctchen222/minimax-tictactoe/internal/config"
	"ctchen222/minimax-tictactoe/internal/console"
	"ctchen222/minimax-tictactoe/internal/logger"
	"ctchen222/minimax-tictactoe/internal/session"
	"ctchen222/minimax-tictactoe/internal/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	// Logs go to stderr so they never interleave with the board on stdout.
	logger.Init(os.Stderr, cfg.SlogLevel())

	shutdown, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	settings, err := cfg.Game.Settings()
	if err != nil {
		return err
	}

	d := console.NewDriver(os.Stdin, os.Stdout)
	settings.FirstPlayer, err = d.Welcome(ctx, settings.FirstPlayer)
	if err != nil {
		return ignoreEnd(err)
	}

	runner := session.NewRunner(settings, bot.NewPicker(cfg.Game.PickerOptions()...))
	return ignoreEnd(runner.Run(ctx, d))
}

// ignoreEnd treats closed input and interrupts as a normal exit.
func ignoreEnd(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
