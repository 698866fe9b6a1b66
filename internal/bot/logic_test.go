package bot

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctchen222/minimax-tictactoe/internal/game"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{in: "easy", want: Easy},
		{in: "Easy", want: Easy},
		{in: "MEDIUM", want: Medium},
		{in: " hard ", want: Hard},
		{in: "expert", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDifficulty(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownDifficulty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChooseHard(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  game.Move
	}{
		{name: "takes the immediate win", board: "OO_/XX_/X__", want: 2},
		{name: "prefers the faster win", board: "OXX/_O_/___", want: 8},
		{name: "blocks the opponent", board: "XX_/O__/___", want: 2},
		{name: "only one cell left", board: "XOX/XOO/OX_", want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPicker(WithSeed(7))
			b := parse(t, tt.board)
			before := *b

			got, err := p.Choose(context.Background(), b, Hard)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, before, *b, "Choose must not modify the board")
		})
	}
}

func TestChooseHardEmptyBoardIsOptimal(t *testing.T) {
	p := NewPicker(WithSeed(11))
	optimal, _ := bestMoves(ScoreMoves(game.NewBoard(), nil))

	seen := map[game.Move]bool{}
	for range 50 {
		m, err := p.Choose(context.Background(), game.NewBoard(), Hard)
		require.NoError(t, err)
		require.Contains(t, optimal, m)
		seen[m] = true
	}
	assert.Greater(t, len(seen), 1, "ties must be broken at random, not by taking the first maximum")
}

func TestChooseSeededIsReproducible(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		t.Run(d.String(), func(t *testing.T) {
			a := NewPicker(WithSeed(42))
			b := NewPicker(WithRand(rand.New(rand.NewPCG(42, 42^0x9e3779b97f4a7c15))))
			board := parse(t, "X__/___/___")

			for range 20 {
				ma, err := a.Choose(context.Background(), board, d)
				require.NoError(t, err)
				mb, err := b.Choose(context.Background(), board, d)
				require.NoError(t, err)
				require.Equal(t, ma, mb)
			}
		})
	}
}

func TestChooseEasyPicksAvailableCells(t *testing.T) {
	p := NewPicker(WithSeed(3))
	b := parse(t, "XO_/_X_/O_X")
	available := b.AvailableMoves()

	for range 30 {
		m, err := p.Choose(context.Background(), b, Easy)
		require.NoError(t, err)
		require.Contains(t, available, m)
	}
}

func TestChooseMediumProbabilityBounds(t *testing.T) {
	b := parse(t, "OXX/_O_/___")

	searching := NewPicker(WithSeed(5), WithRandomMoveProbability(0))
	for range 10 {
		m, err := searching.Choose(context.Background(), b, Medium)
		require.NoError(t, err)
		require.Equal(t, game.Move(8), m)
	}

	random := NewPicker(WithSeed(5), WithRandomMoveProbability(1))
	seen := map[game.Move]bool{}
	for range 60 {
		m, err := random.Choose(context.Background(), b, Medium)
		require.NoError(t, err)
		require.Contains(t, b.AvailableMoves(), m)
		seen[m] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestChooseErrors(t *testing.T) {
	p := NewPicker(WithSeed(1))

	_, err := p.Choose(context.Background(), parse(t, "XOX/OOX/XXO"), Hard)
	require.ErrorIs(t, err, ErrNoMoves)

	_, err = p.Choose(context.Background(), parse(t, "XXX/OO_/___"), Easy)
	require.ErrorIs(t, err, ErrNoMoves)

	_, err = p.Choose(context.Background(), game.NewBoard(), Difficulty(0))
	require.ErrorIs(t, err, ErrUnknownDifficulty)

	_, err = p.ChooseFor(context.Background(), game.NewBoard(), game.Empty, Hard)
	require.ErrorIs(t, err, game.ErrInvalidMove)
}

func TestOptimalPlayAlwaysDraws(t *testing.T) {
	for _, first := range []game.Mark{game.PlayerMark, game.ComputerMark} {
		for opening := range game.BoardSize {
			p := NewPicker(WithSeed(uint64(opening+1)), WithPruning())
			b := game.NewBoard()
			require.NoError(t, b.Apply(game.Move(opening), first))

			next := first.Opponent()
			for !b.IsTerminal() {
				m, err := p.ChooseFor(context.Background(), b, next, Hard)
				require.NoError(t, err)
				require.NoError(t, b.Apply(m, next))
				next = next.Opponent()
			}
			require.Equal(t, game.Draw, b.Outcome(), "%s opening on %d ended %s", first, opening, b)
		}
	}
}
