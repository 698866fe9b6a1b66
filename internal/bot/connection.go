package bot

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"ctchen222/minimax-tictactoe/internal/game"
	"ctchen222/minimax-tictactoe/internal/player"
	"ctchen222/minimax-tictactoe/pkg/proto"
)

// BotConnection simulates a websocket connection for a bot sitting on the human side of the
// grid. It implements the player.Connection interface and plays X with its own Picker.
type BotConnection struct {
	playerID   string
	difficulty Difficulty
	picker     *Picker
	gamesLeft  int
	moves      chan []byte
	closed     chan struct{}
	once       sync.Once

	mu       sync.Mutex
	outcomes map[string]int
}

// NewBotConnection creates a connection that plays games games, asking for a rematch after
// each one but the last, then closes.
func NewBotConnection(playerID string, d Difficulty, games int, picker *Picker) *BotConnection {
	if picker == nil {
		picker = NewPicker()
	}
	return &BotConnection{
		playerID:   playerID,
		difficulty: d,
		picker:     picker,
		gamesLeft:  games,
		moves:      make(chan []byte, 1),
		closed:     make(chan struct{}),
		outcomes:   make(map[string]int),
	}
}

// WriteMessage is called by the grid driver to send game state to the bot.
func (bc *BotConnection) WriteMessage(_ int, data []byte) error {
	select {
	case <-bc.closed:
		return websocket.ErrCloseSent
	default:
	}

	var msg proto.ServerToClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}

	switch msg.Type {
	case proto.TypeUpdate:
		// The bot only acts on its own turn.
		if msg.Next != player.Human.String() {
			return nil
		}
		b, err := proto.ParseCells(msg.Board)
		if err != nil {
			return err
		}
		m, err := bc.picker.ChooseFor(context.Background(), &b, game.PlayerMark, bc.difficulty)
		if err != nil {
			return err
		}
		return bc.queue(proto.TypeClick, &m)

	case proto.TypeGameOver:
		bc.mu.Lock()
		bc.outcomes[msg.Outcome]++
		bc.mu.Unlock()

		bc.gamesLeft--
		slog.Debug("Bot finished a game", "player.id", bc.playerID, "outcome", msg.Outcome, "games_left", bc.gamesLeft)
		if bc.gamesLeft > 0 {
			return bc.queue(proto.TypeRematch, nil)
		}
		return bc.Close()
	}

	return nil
}

// ReadMessage blocks until the bot has a message or the connection is closed.
func (bc *BotConnection) ReadMessage() (int, []byte, error) {
	select {
	case msg := <-bc.moves:
		return websocket.TextMessage, msg, nil
	case <-bc.closed:
		return 0, nil, &websocket.CloseError{Code: websocket.CloseNormalClosure, Text: "bot finished"}
	}
}

func (bc *BotConnection) Close() error {
	bc.once.Do(func() { close(bc.closed) })
	return nil
}

// Outcomes counts finished games by outcome name.
func (bc *BotConnection) Outcomes() map[string]int {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	outcomes := make(map[string]int, len(bc.outcomes))
	for k, v := range bc.outcomes {
		outcomes[k] = v
	}
	return outcomes
}

func (bc *BotConnection) queue(msgType string, m *game.Move) error {
	msg := proto.ClientToServerMessage{Type: msgType}
	if m != nil {
		cell := int(*m)
		msg.Cell = &cell
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	// Drop a stale message so the newest one wins.
	select {
	case <-bc.moves:
	default:
	}
	bc.moves <- data
	return nil
}

// NewBotPlayer creates a player whose moves come from a BotConnection.
func NewBotPlayer(playerID string, d Difficulty, games int, picker *Picker) (*player.Player, *BotConnection) {
	conn := NewBotConnection(playerID, d, games, picker)
	return player.NewPlayer(playerID, conn), conn
}
