package game

import (
	"errors"
	"fmt"
	"strings"
)

// Mark represents the mark of a player (X, O) or an empty cell.
type Mark string

const (
	Empty        Mark = ""
	PlayerMark   Mark = "X"
	ComputerMark Mark = "O"
)

// Board boundaries
const (
	BoardSize = 9
	BorderMin = 0
	BorderMax = 2
)

var ErrInvalidMove = errors.New("invalid move")

// WinLines are the 3 rows, 3 columns and 2 diagonals of the grid.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent returns the other non-empty mark. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case PlayerMark:
		return ComputerMark
	case ComputerMark:
		return PlayerMark
	default:
		return Empty
	}
}

// Move is a cell index in row-major order, 0 through 8.
type Move int

// MoveAt converts a (row, col) pair to a Move.
func MoveAt(row, col int) (Move, error) {
	if row < BorderMin || row > BorderMax || col < BorderMin || col > BorderMax {
		return 0, fmt.Errorf("%w: position (%d, %d) is off the board", ErrInvalidMove, row, col)
	}
	return Move(row*3 + col), nil
}

// RowCol returns the (row, col) pair of the move.
func (m Move) RowCol() (row, col int) {
	return int(m) / 3, int(m) % 3
}

func (m Move) valid() bool {
	return m >= 0 && m < BoardSize
}

// Board is the 3x3 grid stored row-major.
type Board [BoardSize]Mark

func NewBoard() *Board {
	return &Board{}
}

// Apply places mark on the cell referenced by m. It does not check whose turn it is.
func (b *Board) Apply(m Move, mark Mark) error {
	if !m.valid() {
		return fmt.Errorf("%w: cell %d is out of range", ErrInvalidMove, m)
	}
	if mark != PlayerMark && mark != ComputerMark {
		return fmt.Errorf("%w: unknown mark %q", ErrInvalidMove, mark)
	}
	if b[m] != Empty {
		return fmt.Errorf("%w: cell %d is already occupied", ErrInvalidMove, m)
	}
	b[m] = mark
	return nil
}

// Undo clears the cell referenced by m.
func (b *Board) Undo(m Move) {
	if m.valid() {
		b[m] = Empty
	}
}

// AvailableMoves lists the empty cells in ascending order.
func (b *Board) AvailableMoves() []Move {
	moves := make([]Move, 0, BoardSize)
	for i, cell := range b {
		if cell == Empty {
			moves = append(moves, Move(i))
		}
	}
	return moves
}

// HasLine reports whether mark owns a complete win line.
func (b *Board) HasLine(mark Mark) bool {
	for _, line := range WinLines {
		if b[line[0]] == mark && b[line[1]] == mark && b[line[2]] == mark {
			return true
		}
	}
	return false
}

// Winner returns the mark owning a complete win line, if any.
func (b *Board) Winner() (Mark, bool) {
	for _, line := range WinLines {
		a := b[line[0]]
		if a != Empty && a == b[line[1]] && a == b[line[2]] {
			return a, true
		}
	}
	return Empty, false
}

// IsFull reports whether no empty cell remains.
func (b *Board) IsFull() bool {
	for _, cell := range b {
		if cell == Empty {
			return false
		}
	}
	return true
}

// IsTerminal reports whether the game on this board is over.
func (b *Board) IsTerminal() bool {
	if _, ok := b.Winner(); ok {
		return true
	}
	return b.IsFull()
}

// Swapped returns a copy of the board with X and O exchanged.
func (b *Board) Swapped() *Board {
	var s Board
	for i, cell := range b {
		s[i] = cell.Opponent()
	}
	return &s
}

// Count returns how many cells hold mark.
func (b *Board) Count(mark Mark) int {
	n := 0
	for _, cell := range b {
		if cell == mark {
			n++
		}
	}
	return n
}

func (b *Board) String() string {
	var sb strings.Builder
	for i, cell := range b {
		if cell == Empty {
			sb.WriteByte('_')
		} else {
			sb.WriteString(string(cell))
		}
		if i%3 == 2 && i != BoardSize-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// ParseBoard builds a board from nine cells of X, O or _ with optional separators.
func ParseBoard(s string) (*Board, error) {
	var b Board
	i := 0
	for _, r := range s {
		switch r {
		case '/', ' ', ',':
			continue
		}
		if i == BoardSize {
			return nil, fmt.Errorf("board %q has more than %d cells", s, BoardSize)
		}
		switch r {
		case 'X', 'x':
			b[i] = PlayerMark
		case 'O', 'o':
			b[i] = ComputerMark
		case '_', '.':
			b[i] = Empty
		default:
			return nil, fmt.Errorf("board %q has unknown cell %q", s, r)
		}
		i++
	}
	if i != BoardSize {
		return nil, fmt.Errorf("board %q has %d cells, want %d", s, i, BoardSize)
	}
	return &b, nil
}
