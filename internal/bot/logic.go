package bot

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ctchen222/minimax-tictactoe/internal/game"
)

// MediumRandomMoveProbability is how often Medium plays a random move instead of searching.
const MediumRandomMoveProbability = 0.5

var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrNoMoves           = errors.New("no available moves")
)

var tracer = otel.Tracer("bot")

// Difficulty selects how the computer chooses its move.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty accepts easy, medium or hard in any letter case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

type Option func(p *Picker)

// WithRand makes the picker draw all randomness from r.
func WithRand(r *rand.Rand) Option {
	return func(p *Picker) {
		if r != nil {
			p.rng = r
		}
	}
}

// WithSeed seeds a PCG source. A zero seed keeps the random default.
func WithSeed(seed uint64) Option {
	return func(p *Picker) {
		if seed != 0 {
			p.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		}
	}
}

// WithRandomMoveProbability overrides MediumRandomMoveProbability.
func WithRandomMoveProbability(prob float64) Option {
	return func(p *Picker) {
		if prob >= 0 && prob <= 1 {
			p.randomMoveProbability = prob
		}
	}
}

// WithPruning searches with alpha-beta pruning. Chosen moves are unaffected.
func WithPruning() Option {
	return func(p *Picker) {
		p.evaluate = EvaluatePruned
	}
}

// Picker chooses the computer's move for a difficulty. It is not safe for concurrent use;
// each game session owns one.
type Picker struct {
	rng                   *rand.Rand
	randomMoveProbability float64
	evaluate              Evaluator
}

func NewPicker(options ...Option) *Picker {
	p := &Picker{ // Default values
		rng:                   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		randomMoveProbability: MediumRandomMoveProbability,
		evaluate:              Evaluate,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Choose returns the move for the computer (O). The board is not modified.
func (p *Picker) Choose(ctx context.Context, b *game.Board, d Difficulty) (game.Move, error) {
	_, span := tracer.Start(ctx, "bot.Choose", trace.WithAttributes(
		attribute.String("bot.difficulty", d.String()),
		attribute.Int("board.available", len(b.AvailableMoves())),
	))
	defer span.End()

	m, random, err := p.choose(b, d)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Could not choose a move")
		return 0, err
	}
	span.SetAttributes(attribute.Int("move.cell", int(m)), attribute.Bool("move.random", random))
	return m, nil
}

// ChooseFor returns the move for either mark by searching the mark-swapped board when the
// player's side is requested.
func (p *Picker) ChooseFor(ctx context.Context, b *game.Board, mark game.Mark, d Difficulty) (game.Move, error) {
	switch mark {
	case game.ComputerMark:
		return p.Choose(ctx, b, d)
	case game.PlayerMark:
		return p.Choose(ctx, b.Swapped(), d)
	default:
		return 0, fmt.Errorf("%w: cannot choose for mark %q", game.ErrInvalidMove, mark)
	}
}

func (p *Picker) choose(b *game.Board, d Difficulty) (move game.Move, random bool, err error) {
	moves := b.AvailableMoves()
	if len(moves) == 0 || b.IsTerminal() {
		return 0, false, ErrNoMoves
	}

	switch d {
	case Easy:
		return p.randomMove(moves), true, nil
	case Medium:
		if p.rng.Float64() < p.randomMoveProbability {
			return p.randomMove(moves), true, nil
		}
		return p.optimalMove(b), false, nil
	case Hard:
		return p.optimalMove(b), false, nil
	default:
		return 0, false, fmt.Errorf("%w: %d", ErrUnknownDifficulty, int(d))
	}
}

func (p *Picker) randomMove(moves []game.Move) game.Move {
	return moves[p.rng.IntN(len(moves))]
}

// optimalMove breaks ties between equally scored moves uniformly at random.
func (p *Picker) optimalMove(b *game.Board) game.Move {
	scratch := *b
	best, _ := bestMoves(ScoreMoves(&scratch, p.evaluate))
	return best[p.rng.IntN(len(best))]
}
