package bot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ctchen222/minimax-tictactoe/internal/game"
)

func parse(t *testing.T, s string) *game.Board {
	t.Helper()
	b, err := game.ParseBoard(s)
	require.NoError(t, err)
	return b
}

// reachableBoards enumerates every board reachable from the empty board with either mark
// moving first.
func reachableBoards() []game.Board {
	seen := map[game.Board]bool{}
	var walk func(b game.Board, next game.Mark)
	walk = func(b game.Board, next game.Mark) {
		if seen[b] {
			return
		}
		seen[b] = true
		if b.IsTerminal() {
			return
		}
		for _, m := range b.AvailableMoves() {
			child := b
			child[m] = next
			walk(child, next.Opponent())
		}
	}
	walk(game.Board{}, game.PlayerMark)
	walk(game.Board{}, game.ComputerMark)

	boards := make([]game.Board, 0, len(seen))
	for b := range seen {
		boards = append(boards, b)
	}
	return boards
}

func TestEvaluateTerminalScores(t *testing.T) {
	tests := []struct {
		name  string
		board string
		depth int
		want  int
	}{
		{name: "computer line at root", board: "OOO/XX_/X__", depth: 0, want: 10},
		{name: "computer line deeper", board: "OOO/XX_/X__", depth: 3, want: 7},
		{name: "player line at root", board: "XXX/OO_/___", depth: 0, want: -10},
		{name: "player line deeper", board: "XXX/OO_/___", depth: 4, want: -6},
		{name: "full board without a line", board: "XOX/OOX/XXO", depth: 2, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, maximizing := range []bool{true, false} {
				require.Equal(t, tt.want, Evaluate(parse(t, tt.board), tt.depth, maximizing))
			}
		})
	}
}

func TestEvaluateRestoresBoard(t *testing.T) {
	for _, s := range []string{"___/___/___", "X__/_O_/___", "XO_/OX_/___"} {
		b := parse(t, s)
		before := *b
		Evaluate(b, 0, true)
		require.Equal(t, before, *b, "Evaluate must restore %s", s)
		EvaluatePruned(b, 0, false)
		require.Equal(t, before, *b, "EvaluatePruned must restore %s", s)
		ScoreMoves(b, nil)
		require.Equal(t, before, *b, "ScoreMoves must restore %s", s)
	}
}

func TestEvaluatePrunedMatchesEvaluate(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive comparison over every reachable board")
	}
	for _, b := range reachableBoards() {
		for _, maximizing := range []bool{true, false} {
			plain := Evaluate(&b, 0, maximizing)
			pruned := EvaluatePruned(&b, 0, maximizing)
			if plain != pruned {
				t.Fatalf("board %s maximizing=%v: Evaluate=%d EvaluatePruned=%d", &b, maximizing, plain, pruned)
			}
		}
	}
}

func TestEvaluateMarkSwapSymmetry(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive comparison over every reachable board")
	}
	for _, b := range reachableBoards() {
		for _, maximizing := range []bool{true, false} {
			got := EvaluatePruned(b.Swapped(), 0, !maximizing)
			want := -EvaluatePruned(&b, 0, maximizing)
			if got != want {
				t.Fatalf("board %s maximizing=%v: swapped score %d, want %d", &b, maximizing, got, want)
			}
		}
	}
}

func TestScoreMovesEmptyBoard(t *testing.T) {
	scored := ScoreMoves(game.NewBoard(), nil)
	require.Len(t, scored, game.BoardSize)
	for _, sm := range scored {
		require.Equal(t, 0, sm.Score, "every opening draws under optimal play, cell %d", sm.Move)
	}

	best, score := bestMoves(scored)
	require.Equal(t, 0, score)
	for _, m := range []game.Move{0, 2, 4, 6, 8} {
		require.Contains(t, best, m, "center and corners are optimal openings")
	}
}

func TestScoreMovesPrefersFasterWin(t *testing.T) {
	// O wins at once on 8 (diagonal) or in two plies after 3.
	b := parse(t, "OXX/_O_/___")
	scores := map[game.Move]int{}
	for _, sm := range ScoreMoves(b, nil) {
		scores[sm.Move] = sm.Score
	}
	require.Equal(t, 10, scores[8])
	require.Equal(t, 8, scores[3])

	best, _ := bestMoves(ScoreMoves(b, EvaluatePruned))
	require.Equal(t, []game.Move{8}, best)
}

func TestBestMovesKeepsAllTies(t *testing.T) {
	best, score := bestMoves([]ScoredMove{
		{Move: 1, Score: -3},
		{Move: 2, Score: 5},
		{Move: 4, Score: 5},
		{Move: 7, Score: 0},
	})
	require.Equal(t, 5, score)
	require.Equal(t, []game.Move{2, 4}, best)
}
