package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"ctchen222/minimax-tictactoe/internal/bot"
	"ctchen222/minimax-tictactoe/internal/config"
	"ctchen222/minimax-tictactoe/internal/hub"
	"ctchen222/minimax-tictactoe/internal/logger"
	"ctchen222/minimax-tictactoe/internal/server"
	"ctchen222/minimax-tictactoe/internal/session"
	"ctchen222/minimax-tictactoe/internal/telemetry"
)

func main() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Init(os.Stdout, cfg.SlogLevel())
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		slog.Error("failed to initialize telemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	// Each grid session gets its own picker.
	pickerOptions := cfg.Game.PickerOptions()
	h := hub.NewHub(func() session.MoveCalculator {
		return bot.NewPicker(pickerOptions...)
	})
	hubCtx, stopHub := context.WithCancel(context.Background())
	go h.Run(hubCtx)

	srv := server.NewServer(h, cfg.Game)

	httpServer := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		slog.Info("http server started", "http.addr", cfg.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("ListenAndServe failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	// Hijacked websocket connections are not closed by Shutdown.
	stopHub()
	<-h.Done()
	h.Wait()

	slog.Info("Server exiting")
}
