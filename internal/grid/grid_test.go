package grid

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctchen222/minimax-tictactoe/internal/bot"
	"ctchen222/minimax-tictactoe/internal/game"
	"ctchen222/minimax-tictactoe/internal/player"
	"ctchen222/minimax-tictactoe/internal/session"
	"ctchen222/minimax-tictactoe/pkg/proto"
)

// fakeConn replays scripted client messages and records what the server writes. Once the
// script runs out it reports a normal websocket close.
type fakeConn struct {
	in     chan []byte
	out    [][]byte
	closed bool
}

func newFakeConn(messages ...string) *fakeConn {
	c := &fakeConn{in: make(chan []byte, len(messages))}
	for _, m := range messages {
		c.in <- []byte(m)
	}
	close(c.in)
	return c
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	if c.closed {
		return websocket.ErrCloseSent
	}
	c.out = append(c.out, data)
	return nil
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	msg, ok := <-c.in
	if !ok {
		return 0, nil, &websocket.CloseError{Code: websocket.CloseNormalClosure}
	}
	return websocket.TextMessage, msg, nil
}

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

func (c *fakeConn) sent(t *testing.T) []proto.ServerToClientMessage {
	t.Helper()
	var msgs []proto.ServerToClientMessage
	for _, raw := range c.out {
		var msg proto.ServerToClientMessage
		require.NoError(t, json.Unmarshal(raw, &msg))
		msgs = append(msgs, msg)
	}
	return msgs
}

type scriptedCalculator struct {
	moves []game.Move
}

func (c *scriptedCalculator) Choose(_ context.Context, _ *game.Board, _ bot.Difficulty) (game.Move, error) {
	m := c.moves[0]
	c.moves = c.moves[1:]
	return m, nil
}

var testSettings = session.Settings{
	FirstPlayer:   player.Human,
	Difficulty:    bot.Hard,
	HumanColor:    "blue",
	ComputerColor: "red",
}

func click(cell int) string {
	return `{"type":"click","cell":` + string(rune('0'+cell)) + `}`
}

func TestRequestHumanMoveIgnoresUnusableMessages(t *testing.T) {
	conn := newFakeConn(
		"not json",
		`{"type":"rematch"}`,
		`{"type":"click"}`,
		`{"type":"click","cell":9}`,
		click(0),
		click(4),
	)
	d := NewDriver(player.NewPlayer("p1", conn), testSettings)
	b := game.Board{}
	require.NoError(t, b.Apply(0, game.ComputerMark))

	m, err := d.RequestHumanMove(context.Background(), b)

	require.NoError(t, err)
	assert.Equal(t, game.Move(4), m)
}

func TestRequestHumanMoveDisconnect(t *testing.T) {
	d := NewDriver(player.NewPlayer("p1", newFakeConn()), testSettings)

	_, err := d.RequestHumanMove(context.Background(), game.Board{})

	require.Error(t, err)
	assert.True(t, IsDisconnect(err))
}

func TestRequestHumanMoveCancelled(t *testing.T) {
	d := NewDriver(player.NewPlayer("p1", newFakeConn(click(4))), testSettings)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.RequestHumanMove(ctx, game.Board{})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlayAgain(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		want     bool
	}{
		{name: "rematch", messages: []string{click(1), `{"type":"rematch"}`}, want: true},
		{name: "page closed", messages: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDriver(player.NewPlayer("p1", newFakeConn(tt.messages...)), testSettings)
			got, err := d.PlayAgain(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDriverPlaysFullGame(t *testing.T) {
	conn := newFakeConn(click(0), click(3), click(1), click(2))
	d := NewDriver(player.NewPlayer("p1", conn), testSettings)
	runner := session.NewRunner(testSettings, &scriptedCalculator{moves: []game.Move{3, 4}})

	require.NoError(t, d.Assign(context.Background()))
	require.NoError(t, runner.Run(context.Background(), d))

	var assignment proto.PlayerAssignmentMessage
	require.NoError(t, json.Unmarshal(conn.out[0], &assignment))
	assert.Equal(t, proto.TypeAssignment, assignment.Type)
	assert.Equal(t, "X", assignment.Mark)
	assert.Equal(t, "blue", assignment.Color)
	assert.Equal(t, "red", assignment.ComputerColor)
	assert.Equal(t, "human", assignment.FirstPlayer)

	msgs := conn.sent(t)[1:]
	require.Len(t, msgs, 7)

	assert.Equal(t, proto.TypeUpdate, msgs[0].Type)
	assert.Equal(t, "human", msgs[0].Next)
	assert.Nil(t, msgs[0].Cell)

	// Human 0, computer 3, human 1 (the click on 3 was ignored), computer 4, human 2.
	wantCells := []int{0, 3, 1, 4, 2}
	for i, want := range wantCells {
		update := msgs[i+1]
		require.NotNil(t, update.Cell)
		assert.Equal(t, want, *update.Cell)
		if i%2 == 0 {
			assert.Equal(t, "X", update.Mark)
			assert.Equal(t, "blue", update.Color)
		} else {
			assert.Equal(t, "O", update.Mark)
			assert.Equal(t, "red", update.Color)
		}
	}
	assert.Equal(t, "computer", msgs[1].Next)
	assert.Empty(t, msgs[5].Next)

	gameOver := msgs[6]
	assert.Equal(t, proto.TypeGameOver, gameOver.Type)
	assert.Equal(t, game.PlayerWin.String(), gameOver.Outcome)
	assert.Equal(t, "You win!", gameOver.Message)
	assert.Equal(t, []string{"X", "X", "X", "O", "O", "", "", "", ""}, gameOver.Board)
}

func TestSendAfterClose(t *testing.T) {
	conn := newFakeConn()
	require.NoError(t, conn.Close())
	d := NewDriver(player.NewPlayer("p1", conn), testSettings)

	err := d.NotifyOutcome(context.Background(), game.Board{}, game.Draw)

	require.Error(t, err)
	assert.True(t, errors.Is(err, websocket.ErrCloseSent))
	assert.True(t, IsDisconnect(err))
}
