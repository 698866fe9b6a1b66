package game

// Outcome is the terminal classification of a board. It is always derived, never stored.
type Outcome int

const (
	InProgress Outcome = iota
	PlayerWin
	ComputerWin
	Draw
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case PlayerWin:
		return "player_win"
	case ComputerWin:
		return "computer_win"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Message is the line shown to the human when the game ends.
func (o Outcome) Message() string {
	switch o {
	case PlayerWin:
		return "You win!"
	case ComputerWin:
		return "Computer wins!"
	case Draw:
		return "It's a draw!"
	default:
		return ""
	}
}

// IsTerminal reports whether no further moves are accepted.
func (o Outcome) IsTerminal() bool {
	return o != InProgress
}

// Outcome derives the game outcome from the board contents.
func (b *Board) Outcome() Outcome {
	if winner, ok := b.Winner(); ok {
		if winner == ComputerMark {
			return ComputerWin
		}
		return PlayerWin
	}
	if b.IsFull() {
		return Draw
	}
	return InProgress
}
