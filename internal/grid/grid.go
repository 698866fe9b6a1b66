package grid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ctchen222/minimax-tictactoe/internal/game"
	"ctchen222/minimax-tictactoe/internal/player"
	"ctchen222/minimax-tictactoe/internal/session"
	"ctchen222/minimax-tictactoe/internal/validator"
	"ctchen222/minimax-tictactoe/pkg/proto"
)

var tracer = otel.Tracer("grid")

// Driver plays a session with a browser grid over a websocket connection. Clicks on occupied
// cells and malformed messages are ignored.
type Driver struct {
	player   *player.Player
	settings session.Settings
}

func NewDriver(p *player.Player, settings session.Settings) *Driver {
	return &Driver{player: p, settings: settings}
}

// Assign tells the page which mark and colors the human plays with.
func (d *Driver) Assign(ctx context.Context) error {
	return d.send(ctx, &proto.PlayerAssignmentMessage{
		Type:          proto.TypeAssignment,
		PlayerID:      d.player.ID,
		Mark:          string(game.PlayerMark),
		Color:         d.settings.HumanColor,
		ComputerMark:  string(game.ComputerMark),
		ComputerColor: d.settings.ComputerColor,
		FirstPlayer:   d.settings.FirstPlayer.String(),
		Difficulty:    d.settings.Difficulty.String(),
	})
}

func (d *Driver) GameStarted(ctx context.Context, b game.Board, first player.Side) error {
	return d.send(ctx, &proto.ServerToClientMessage{
		Type:  proto.TypeUpdate,
		Board: proto.BoardCells(b),
		Next:  first.String(),
	})
}

func (d *Driver) MovePlayed(ctx context.Context, b game.Board, m game.Move, side player.Side) error {
	cell := int(m)
	msg := &proto.ServerToClientMessage{
		Type:  proto.TypeUpdate,
		Board: proto.BoardCells(b),
		Cell:  &cell,
		Mark:  string(session.MarkOf(side)),
		Color: d.settings.Color(side),
	}
	if !b.Outcome().IsTerminal() {
		msg.Next = side.Other().String()
	}
	return d.send(ctx, msg)
}

func (d *Driver) NotifyOutcome(ctx context.Context, b game.Board, outcome game.Outcome) error {
	return d.send(ctx, &proto.ServerToClientMessage{
		Type:    proto.TypeGameOver,
		Board:   proto.BoardCells(b),
		Outcome: outcome.String(),
		Message: outcome.Message(),
	})
}

// RequestHumanMove waits for a click on an empty cell.
func (d *Driver) RequestHumanMove(ctx context.Context, b game.Board) (game.Move, error) {
	ctx, span := tracer.Start(ctx, "grid.RequestHumanMove", trace.WithAttributes(
		attribute.String("player.id", d.player.ID),
	))
	defer span.End()

	for {
		msg, err := d.read(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Player connection error")
			return 0, err
		}
		if msg.Type != proto.TypeClick {
			slog.DebugContext(ctx, "Ignoring message while waiting for a move", "player.id", d.player.ID, "message.type", msg.Type)
			continue
		}

		m := game.Move(*msg.Cell)
		if b[m] != game.Empty {
			slog.DebugContext(ctx, "Ignoring click on occupied cell", "player.id", d.player.ID, "move.cell", int(m))
			continue
		}
		span.SetAttributes(attribute.Int("move.cell", int(m)))
		return m, nil
	}
}

// PlayAgain waits for a rematch request. A closed connection declines.
func (d *Driver) PlayAgain(ctx context.Context) (bool, error) {
	for {
		msg, err := d.read(ctx)
		if err != nil {
			if IsDisconnect(err) {
				return false, nil
			}
			return false, err
		}
		if msg.Type == proto.TypeRematch {
			slog.InfoContext(ctx, "Player requested a rematch", "player.id", d.player.ID)
			return true, nil
		}
	}
}

// read returns the next well-formed message. Malformed ones are logged and skipped.
func (d *Driver) read(ctx context.Context) (*proto.ClientToServerMessage, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		_, raw, err := d.player.Conn.ReadMessage()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("failed to read message: %w", err)
		}

		var msg proto.ClientToServerMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			slog.WarnContext(ctx, "error unmarshalling message", "player.id", d.player.ID, "error", err)
			continue
		}
		if err := validator.GetValidator().Struct(msg); err != nil {
			slog.WarnContext(ctx, "invalid message from player", "player.id", d.player.ID, "error", err)
			continue
		}
		return &msg, nil
	}
}

func (d *Driver) send(ctx context.Context, message any) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	if err := d.player.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
		slog.ErrorContext(ctx, "error writing message to player", "player.id", d.player.ID, "error", err)
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

// IsDisconnect reports whether err means the page went away rather than a failure.
func IsDisconnect(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, websocket.ErrCloseSent) {
		return true
	}
	var closeErr *websocket.CloseError
	return errors.As(err, &closeErr)
}
