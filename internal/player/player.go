package player

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSide = errors.New("unknown side")

// Side identifies who makes a move: the human at the driver or the computer.
type Side int

const (
	Human Side = iota + 1
	Computer
)

func (s Side) String() string {
	switch s {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == Human {
		return Computer
	}
	return Human
}

// ParseSide accepts human or computer in any letter case.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human":
		return Human, nil
	case "computer":
		return Computer, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSide, s)
	}
}

// Connection is an interface that abstracts the websocket connection.
type Connection interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (int, []byte, error)
	Close() error
}

// Player is a human connected through the grid driver.
type Player struct {
	ID   string
	Conn Connection
}

func NewPlayer(id string, conn Connection) *Player {
	return &Player{ID: id, Conn: conn}
}
