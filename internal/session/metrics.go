package session

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"ctchen222/minimax-tictactoe/internal/bot"
	"ctchen222/minimax-tictactoe/internal/game"
	"ctchen222/minimax-tictactoe/internal/player"
)

var meter = otel.Meter("session")

var (
	movesCounter metric.Int64Counter
	gamesCounter metric.Int64Counter
)

func init() {
	var err error
	movesCounter, err = meter.Int64Counter("tictactoe.moves",
		metric.WithDescription("Moves applied to a board"),
		metric.WithUnit("{move}"),
	)
	if err != nil {
		slog.Error("failed to create moves counter", "error", err)
	}
	gamesCounter, err = meter.Int64Counter("tictactoe.games",
		metric.WithDescription("Games that reached a terminal outcome"),
		metric.WithUnit("{game}"),
	)
	if err != nil {
		slog.Error("failed to create games counter", "error", err)
	}
}

func recordMove(ctx context.Context, side player.Side) {
	if movesCounter == nil {
		return
	}
	movesCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("side", side.String())))
}

func recordGame(ctx context.Context, d bot.Difficulty, outcome game.Outcome) {
	if gamesCounter == nil {
		return
	}
	gamesCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome.String()),
		attribute.String("bot.difficulty", d.String()),
	))
}
