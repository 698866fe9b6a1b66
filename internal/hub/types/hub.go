package types

import (
	"context"

	"ctchen222/minimax-tictactoe/internal/player"
	"ctchen222/minimax-tictactoe/internal/session"
)

// RegistrationRequest asks the hub to run a session for a newly connected player.
type RegistrationRequest struct {
	Player   *player.Player
	Settings session.Settings
	Ctx      context.Context // carries the span of the HTTP upgrade
}
