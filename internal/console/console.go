package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ctchen222/minimax-tictactoe/internal/game"
	"ctchen222/minimax-tictactoe/internal/player"
)

var ErrInvalidInput = errors.New("invalid input")

const (
	welcomeMessage     = "Welcome to Tic-Tac-Toe!"
	firstMovePrompt    = "Do you want to make the first move? (Y/N): "
	movePrompt         = "Enter your move (0-8): "
	notANumberMessage  = "Please enter a valid number."
	invalidMoveMessage = "Invalid move. Try again."
	computerTurn       = "Computer's turn..."
	playAgainPrompt    = "Play again? (y/n): "
)

// Driver plays a session over a line-oriented terminal. The human is X and types cell indices.
type Driver struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewDriver(in io.Reader, out io.Writer) *Driver {
	return &Driver{in: bufio.NewScanner(in), out: out}
}

// Welcome greets the human and asks who moves first. An empty answer keeps def.
func (d *Driver) Welcome(ctx context.Context, def player.Side) (player.Side, error) {
	if err := d.println(welcomeMessage); err != nil {
		return 0, err
	}
	for {
		line, err := d.prompt(ctx, firstMovePrompt)
		if err != nil {
			return 0, err
		}
		switch strings.ToUpper(line) {
		case "":
			return def, nil
		case "Y":
			return player.Human, nil
		case "N":
			return player.Computer, nil
		}
	}
}

func (d *Driver) GameStarted(_ context.Context, b game.Board, _ player.Side) error {
	return d.print(Render(b))
}

func (d *Driver) RequestHumanMove(ctx context.Context, _ game.Board) (game.Move, error) {
	for {
		line, err := d.prompt(ctx, movePrompt)
		if err != nil {
			return 0, err
		}
		m, err := ParseMove(line)
		if err != nil {
			if err := d.println(notANumberMessage); err != nil {
				return 0, err
			}
			continue
		}
		return m, nil
	}
}

func (d *Driver) InvalidMove(_ context.Context, _ game.Move, _ error) error {
	return d.println(invalidMoveMessage)
}

func (d *Driver) MovePlayed(_ context.Context, b game.Board, _ game.Move, side player.Side) error {
	if side == player.Computer {
		if err := d.println(computerTurn); err != nil {
			return err
		}
	}
	return d.print(Render(b))
}

func (d *Driver) NotifyOutcome(_ context.Context, _ game.Board, outcome game.Outcome) error {
	return d.println(outcome.Message())
}

// PlayAgain asks until the answer is y or n. End of input declines.
func (d *Driver) PlayAgain(ctx context.Context) (bool, error) {
	for {
		line, err := d.prompt(ctx, playAgainPrompt)
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
	}
}

// prompt writes p and reads one trimmed line. End of input is reported as io.EOF.
func (d *Driver) prompt(ctx context.Context, p string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := d.print(p); err != nil {
		return "", err
	}
	if !d.in.Scan() {
		if err := d.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(d.in.Text()), nil
}

func (d *Driver) print(s string) error {
	_, err := io.WriteString(d.out, s)
	return err
}

func (d *Driver) println(s string) error {
	return d.print(s + "\n")
}

// ParseMove reads a cell index. Range is checked by the board, not here.
func ParseMove(s string) (game.Move, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}
	return game.Move(n), nil
}

// Render draws the board with empty cells labelled by their index.
func Render(b game.Board) string {
	var sb strings.Builder
	sb.WriteString("\n")
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}
		for col := 0; col < 3; col++ {
			i := row*3 + col
			label := string(b[i])
			if b[i] == game.Empty {
				label = strconv.Itoa(i)
			}
			if col > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(" " + label + " ")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return sb.String()
}
