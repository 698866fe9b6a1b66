package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ctchen222/minimax-tictactoe/internal/game"
	"ctchen222/minimax-tictactoe/internal/player"
)

// Runner drives sessions against a Driver until the human declines a replay.
type Runner struct {
	settings   Settings
	calculator MoveCalculator
}

func NewRunner(settings Settings, calculator MoveCalculator) *Runner {
	return &Runner{settings: settings, calculator: calculator}
}

// Run plays games until the driver declines another one, its input ends, or ctx is done.
func (r *Runner) Run(ctx context.Context, d Driver) error {
	s := New(r.settings, r.calculator)
	slog.InfoContext(ctx, "Session started", "session.id", s.ID, "first_player", r.settings.FirstPlayer.String(), "bot.difficulty", r.settings.Difficulty.String())

	for {
		if err := r.PlayGame(ctx, s, d); err != nil {
			return err
		}

		replayer, ok := d.(Replayer)
		if !ok {
			return nil
		}
		again, err := replayer.PlayAgain(ctx)
		if err != nil {
			return fmt.Errorf("failed to ask for a replay: %w", err)
		}
		if !again {
			slog.InfoContext(ctx, "Session ended", "session.id", s.ID)
			return nil
		}
		s.Reset()
	}
}

// PlayGame plays s to a terminal outcome and reports it to the driver.
func (r *Runner) PlayGame(ctx context.Context, s *Session, d Driver) error {
	observer, _ := d.(Observer)
	reporter, _ := d.(InvalidMoveReporter)

	if observer != nil {
		if err := observer.GameStarted(ctx, s.Board(), s.Turn()); err != nil {
			return err
		}
	}

	for !s.Outcome().IsTerminal() {
		if err := ctx.Err(); err != nil {
			return err
		}

		side := s.Turn()
		var m game.Move
		switch side {
		case player.Human:
			var err error
			m, err = d.RequestHumanMove(ctx, s.Board())
			if err != nil {
				return err
			}
			if err := s.PlayHuman(ctx, m); err != nil {
				if !errors.Is(err, game.ErrInvalidMove) {
					return err
				}
				slog.DebugContext(ctx, "Invalid human move", "session.id", s.ID, "move.cell", int(m), "error", err)
				if reporter != nil {
					if err := reporter.InvalidMove(ctx, m, err); err != nil {
						return err
					}
				}
				continue
			}
		case player.Computer:
			var err error
			m, err = s.PlayComputer(ctx)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown side to move: %s", side)
		}

		if observer != nil {
			if err := observer.MovePlayed(ctx, s.Board(), m, side); err != nil {
				return err
			}
		}
	}

	return d.NotifyOutcome(ctx, s.Board(), s.Outcome())
}
