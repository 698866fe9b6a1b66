package bot

import (
	"math"

	"ctchen222/minimax-tictactoe/internal/game"
)

// WinScore is the score of an immediate computer win. Every ply of delay costs one point.
const WinScore = 10

// Evaluator scores a board for the side to move.
type Evaluator func(b *game.Board, depth int, maximizing bool) int

// terminalScore returns the score of a finished board. Computer lines are checked first.
func terminalScore(b *game.Board, depth int) (int, bool) {
	switch {
	case b.HasLine(game.ComputerMark):
		return WinScore - depth, true
	case b.HasLine(game.PlayerMark):
		return depth - WinScore, true
	case b.IsFull():
		return 0, true
	}
	return 0, false
}

// Evaluate runs an exhaustive minimax search. The computer (O) maximizes and the player (X)
// minimizes. b is mutated while searching and restored before Evaluate returns.
func Evaluate(b *game.Board, depth int, maximizing bool) int {
	if score, ok := terminalScore(b, depth); ok {
		return score
	}

	mark, best := sideToMove(maximizing)
	for _, m := range b.AvailableMoves() {
		score := try(b, m, mark, func() int {
			return Evaluate(b, depth+1, !maximizing)
		})
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}

// EvaluatePruned returns the same score as Evaluate using alpha-beta pruning.
func EvaluatePruned(b *game.Board, depth int, maximizing bool) int {
	return alphaBeta(b, depth, maximizing, math.MinInt, math.MaxInt)
}

func alphaBeta(b *game.Board, depth int, maximizing bool, alpha, beta int) int {
	if score, ok := terminalScore(b, depth); ok {
		return score
	}

	mark, best := sideToMove(maximizing)
	for _, m := range b.AvailableMoves() {
		score := try(b, m, mark, func() int {
			return alphaBeta(b, depth+1, !maximizing, alpha, beta)
		})
		if maximizing {
			best = max(best, score)
			alpha = max(alpha, best)
		} else {
			best = min(best, score)
			beta = min(beta, best)
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

func sideToMove(maximizing bool) (game.Mark, int) {
	if maximizing {
		return game.ComputerMark, math.MinInt
	}
	return game.PlayerMark, math.MaxInt
}

// try places mark at m, runs eval and clears the cell again on every exit path.
func try(b *game.Board, m game.Move, mark game.Mark, eval func() int) int {
	b[m] = mark
	defer b.Undo(m)
	return eval()
}

// ScoredMove is a root move together with its minimax score.
type ScoredMove struct {
	Move  game.Move
	Score int
}

// ScoreMoves scores every available move for the computer: the move is placed as O and the
// player's reply is searched as the minimizing side.
func ScoreMoves(b *game.Board, evaluate Evaluator) []ScoredMove {
	if evaluate == nil {
		evaluate = Evaluate
	}
	moves := b.AvailableMoves()
	scored := make([]ScoredMove, 0, len(moves))
	for _, m := range moves {
		score := try(b, m, game.ComputerMark, func() int {
			return evaluate(b, 0, false)
		})
		scored = append(scored, ScoredMove{Move: m, Score: score})
	}
	return scored
}

// bestMoves returns every move attaining the maximum score, in ascending cell order.
func bestMoves(scored []ScoredMove) ([]game.Move, int) {
	best := math.MinInt
	var moves []game.Move
	for _, sm := range scored {
		switch {
		case sm.Score > best:
			best = sm.Score
			moves = append(moves[:0], sm.Move)
		case sm.Score == best:
			moves = append(moves, sm.Move)
		}
	}
	return moves, best
}
