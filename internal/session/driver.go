package session

import (
	"context"

	"ctchen222/minimax-tictactoe/internal/game"
	"ctchen222/minimax-tictactoe/internal/player"
)

//go:generate mockgen -destination=mocks/mock_driver.go -package=mocks . Driver,InteractiveDriver

// Driver is the presentation side of a session: it asks the human for moves and shows results.
// Boards are passed by value so a driver can never modify the session's board.
type Driver interface {
	RequestHumanMove(ctx context.Context, b game.Board) (game.Move, error)
	NotifyOutcome(ctx context.Context, b game.Board, outcome game.Outcome) error
}

// Observer is implemented by drivers that redraw the board as the game progresses.
type Observer interface {
	GameStarted(ctx context.Context, b game.Board, first player.Side) error
	MovePlayed(ctx context.Context, b game.Board, m game.Move, side player.Side) error
}

// InvalidMoveReporter is implemented by drivers that tell the human a move was rejected
// before asking again.
type InvalidMoveReporter interface {
	InvalidMove(ctx context.Context, m game.Move, err error) error
}

// Replayer is implemented by drivers that offer another game after a terminal outcome.
type Replayer interface {
	PlayAgain(ctx context.Context) (bool, error)
}

// InteractiveDriver is a driver with every optional capability.
type InteractiveDriver interface {
	Driver
	Observer
	InvalidMoveReporter
	Replayer
}
