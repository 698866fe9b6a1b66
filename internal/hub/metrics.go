package hub

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("hub")

var sessionsCounter metric.Int64UpDownCounter

func init() {
	var err error
	sessionsCounter, err = meter.Int64UpDownCounter("tictactoe.grid.sessions",
		metric.WithDescription("Number of live grid sessions"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		slog.Error("Failed to create grid sessions counter", "error", err)
	}
}

func recordSessions(ctx context.Context, delta int64) {
	if sessionsCounter == nil {
		return
	}
	sessionsCounter.Add(ctx, delta)
}
