package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ctchen222/minimax-tictactoe/internal/bot"
	"ctchen222/minimax-tictactoe/internal/game"
	"ctchen222/minimax-tictactoe/internal/player"
)

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
)

var tracer = otel.Tracer("session")

// MoveCalculator defines an interface for an agent that can calculate the computer's move.
type MoveCalculator interface {
	Choose(ctx context.Context, b *game.Board, d bot.Difficulty) (game.Move, error)
}

// Settings are chosen once before a session starts.
type Settings struct {
	FirstPlayer   player.Side
	Difficulty    bot.Difficulty
	HumanColor    string
	ComputerColor string
}

// MarkOf returns the mark a side plays with.
func MarkOf(side player.Side) game.Mark {
	if side == player.Computer {
		return game.ComputerMark
	}
	return game.PlayerMark
}

// Color returns the display color configured for a side.
func (s Settings) Color(side player.Side) string {
	if side == player.Computer {
		return s.ComputerColor
	}
	return s.HumanColor
}

// Session is a single human-vs-computer game. It owns its board exclusively.
type Session struct {
	ID         string
	settings   Settings
	board      game.Board
	turn       player.Side
	calculator MoveCalculator
}

func New(settings Settings, calculator MoveCalculator) *Session {
	return &Session{
		ID:         uuid.New().String(),
		settings:   settings,
		turn:       settings.FirstPlayer,
		calculator: calculator,
	}
}

func (s *Session) Settings() Settings {
	return s.settings
}

// Board returns a copy of the current board.
func (s *Session) Board() game.Board {
	return s.board
}

// Turn returns the side expected to move next.
func (s *Session) Turn() player.Side {
	return s.turn
}

func (s *Session) Outcome() game.Outcome {
	return s.board.Outcome()
}

// Reset clears the board for a replay. The configured first player moves first again.
func (s *Session) Reset() {
	s.board = game.Board{}
	s.turn = s.settings.FirstPlayer
}

// PlayHuman applies the human's move.
func (s *Session) PlayHuman(ctx context.Context, m game.Move) error {
	ctx, span := tracer.Start(ctx, "session.PlayHuman", trace.WithAttributes(
		attribute.String("session.id", s.ID),
		attribute.Int("move.cell", int(m)),
	))
	defer span.End()

	if err := s.play(ctx, player.Human, m); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Human move rejected")
		return err
	}
	return nil
}

// PlayComputer asks the calculator for a move and applies it.
func (s *Session) PlayComputer(ctx context.Context) (game.Move, error) {
	ctx, span := tracer.Start(ctx, "session.PlayComputer", trace.WithAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("bot.difficulty", s.settings.Difficulty.String()),
	))
	defer span.End()

	if err := s.accept(player.Computer); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Computer move not allowed")
		return 0, err
	}

	board := s.board
	m, err := s.calculator.Choose(ctx, &board, s.settings.Difficulty)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Could not calculate computer move")
		return 0, fmt.Errorf("failed to calculate computer move: %w", err)
	}
	span.SetAttributes(attribute.Int("move.cell", int(m)))

	if err := s.play(ctx, player.Computer, m); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Computer move rejected")
		return 0, err
	}
	return m, nil
}

func (s *Session) accept(side player.Side) error {
	if s.Outcome().IsTerminal() {
		return ErrGameFinished
	}
	if s.turn != side {
		return fmt.Errorf("%w: %s to move", ErrNotYourTurn, s.turn)
	}
	return nil
}

func (s *Session) play(ctx context.Context, side player.Side, m game.Move) error {
	if err := s.accept(side); err != nil {
		return err
	}
	if err := s.board.Apply(m, MarkOf(side)); err != nil {
		return err
	}
	s.turn = side.Other()
	recordMove(ctx, side)

	outcome := s.Outcome()
	slog.DebugContext(ctx, "Move applied", "session.id", s.ID, "side", side.String(), "move.cell", int(m), "outcome", outcome.String())
	if outcome.IsTerminal() {
		recordGame(ctx, s.settings.Difficulty, outcome)
		slog.InfoContext(ctx, "Game finished", "session.id", s.ID, "outcome", outcome.String(), "bot.difficulty", s.settings.Difficulty.String())
	}
	return nil
}
