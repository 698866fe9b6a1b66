package hub

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"

	"ctchen222/minimax-tictactoe/internal/hub/types"
	"ctchen222/minimax-tictactoe/internal/player"
	"ctchen222/minimax-tictactoe/internal/session"
)

var tracer = otel.Tracer("hub")

// CalculatorFactory builds the move calculator for one session. Calculators are not shared
// between sessions.
type CalculatorFactory func() session.MoveCalculator

type client struct {
	player *player.Player
	cancel context.CancelFunc
}

// Hub runs one session per connected player and tracks the live connections.
type Hub struct {
	clients       map[string]*client
	register      chan *types.RegistrationRequest
	unregister    chan *player.Player
	count         chan chan int
	done          chan struct{}
	newCalculator CalculatorFactory
	wg            sync.WaitGroup
}

// NewHub creates a new hub.
func NewHub(newCalculator CalculatorFactory) *Hub {
	return &Hub{
		clients:       make(map[string]*client),
		register:      make(chan *types.RegistrationRequest),
		unregister:    make(chan *player.Player),
		count:         make(chan chan int),
		done:          make(chan struct{}),
		newCalculator: newCalculator,
	}
}

// Run serves registrations until ctx is done, then closes every client connection.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case req := <-h.register:
			h.handleRegistration(ctx, req)

		case p := <-h.unregister:
			if c, ok := h.clients[p.ID]; ok && c.player == p {
				c.cancel()
				delete(h.clients, p.ID)
				recordSessions(ctx, -1)
				slog.InfoContext(ctx, "Player disconnected", "player.id", p.ID, "clients.count", len(h.clients))
			}

		case reply := <-h.count:
			reply <- len(h.clients)

		case <-ctx.Done():
			slog.InfoContext(ctx, "Hub shutting down", "clients.count", len(h.clients))
			for id, c := range h.clients {
				c.cancel()
				if err := c.player.Conn.Close(); err != nil {
					slog.WarnContext(ctx, "Error closing player connection", "player.id", id, "error", err)
				}
				delete(h.clients, id)
				recordSessions(ctx, -1)
			}
			return
		}
	}
}

// Register returns the register channel.
func (h *Hub) Register() chan<- *types.RegistrationRequest {
	return h.register
}

// Done is closed once Run has returned and no more registrations are accepted.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Count returns the number of live clients, or 0 once the hub has stopped.
func (h *Hub) Count() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}

// Wait blocks until every session goroutine has finished.
func (h *Hub) Wait() {
	h.wg.Wait()
}
