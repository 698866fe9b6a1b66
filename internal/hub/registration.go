package hub

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ctchen222/minimax-tictactoe/internal/grid"
	"ctchen222/minimax-tictactoe/internal/hub/types"
	"ctchen222/minimax-tictactoe/internal/session"
)

func (h *Hub) handleRegistration(ctx context.Context, req *types.RegistrationRequest) {
	p := req.Player
	if old, ok := h.clients[p.ID]; ok {
		slog.WarnContext(ctx, "Replacing existing connection for player", "player.id", p.ID)
		old.cancel()
		_ = old.player.Conn.Close()
		recordSessions(ctx, -1)
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	h.clients[p.ID] = &client{player: p, cancel: cancel}
	recordSessions(ctx, 1)
	slog.InfoContext(ctx, "Player connected", "player.id", p.ID, "clients.count", len(h.clients))

	h.wg.Add(1)
	go h.serve(sessionCtx, req)
}

// serve plays sessions for one connection until the page leaves or the hub shuts down.
func (h *Hub) serve(ctx context.Context, req *types.RegistrationRequest) {
	defer h.wg.Done()

	p := req.Player
	var opts []trace.SpanStartOption
	if req.Ctx != nil {
		opts = append(opts, trace.WithLinks(trace.LinkFromContext(req.Ctx)))
	}
	opts = append(opts, trace.WithAttributes(
		attribute.String("player.id", p.ID),
		attribute.String("first_player", req.Settings.FirstPlayer.String()),
		attribute.String("bot.difficulty", req.Settings.Difficulty.String()),
	))
	ctx, span := tracer.Start(ctx, "hub.serve", opts...)
	defer span.End()

	d := grid.NewDriver(p, req.Settings)
	err := d.Assign(ctx)
	if err == nil {
		err = session.NewRunner(req.Settings, h.newCalculator()).Run(ctx, d)
	}

	switch {
	case err == nil, grid.IsDisconnect(err), errors.Is(err, context.Canceled):
		slog.DebugContext(ctx, "Grid session finished", "player.id", p.ID)
	default:
		slog.ErrorContext(ctx, "Grid session failed", "player.id", p.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Grid session failed")
	}

	if err := p.Conn.Close(); err != nil {
		slog.DebugContext(ctx, "Error closing player connection", "player.id", p.ID, "error", err)
	}

	select {
	case h.unregister <- p:
	case <-h.done:
	}
}
