package proto

import (
	"fmt"

	"ctchen222/minimax-tictactoe/internal/game"
)

// Message types exchanged with the grid page.
const (
	TypeClick      = "click"
	TypeRematch    = "rematch"
	TypeAssignment = "assignment"
	TypeUpdate     = "update"
	TypeGameOver   = "game_over"
)

// ClientToServerMessage represents a message from the client to the server.
type ClientToServerMessage struct {
	Type string `json:"type" validate:"required,oneof=click rematch"`
	Cell *int   `json:"cell,omitempty" validate:"required_if=Type click,omitempty,min=0,max=8"`
}

// ServerToClientMessage represents a message from the server to the client.
type ServerToClientMessage struct {
	Type    string   `json:"type"`
	Board   []string `json:"board,omitempty"`
	Cell    *int     `json:"cell,omitempty"`
	Mark    string   `json:"mark,omitempty"`
	Color   string   `json:"color,omitempty"`
	Next    string   `json:"next,omitempty"`
	Outcome string   `json:"outcome,omitempty"`
	Message string   `json:"message,omitempty"`
}

// PlayerAssignmentMessage informs the human of their mark and the agreed settings.
type PlayerAssignmentMessage struct {
	Type          string `json:"type"`
	PlayerID      string `json:"playerId,omitempty"`
	Mark          string `json:"mark"`
	Color         string `json:"color"`
	ComputerMark  string `json:"computerMark"`
	ComputerColor string `json:"computerColor"`
	FirstPlayer   string `json:"firstPlayer"`
	Difficulty    string `json:"difficulty"`
}

// BoardCells flattens b into nine strings, empty cells as "".
func BoardCells(b game.Board) []string {
	cells := make([]string, len(b))
	for i, mark := range b {
		cells[i] = string(mark)
	}
	return cells
}

// ParseCells is the inverse of BoardCells.
func ParseCells(cells []string) (game.Board, error) {
	var b game.Board
	if len(cells) != game.BoardSize {
		return b, fmt.Errorf("%w: board has %d cells", game.ErrInvalidMove, len(cells))
	}
	for i, cell := range cells {
		if cell == "" {
			continue
		}
		if err := b.Apply(game.Move(i), game.Mark(cell)); err != nil {
			return b, err
		}
	}
	return b, nil
}
