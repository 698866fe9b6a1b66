package models

import "ctchen222/minimax-tictactoe/internal/config"

// GameOptionsRequest is the query string of the websocket endpoint. Empty fields fall back to
// the server defaults.
type GameOptionsRequest struct {
	FirstPlayer   string `form:"first_player" json:"firstPlayer" binding:"omitempty,max=16"`
	Difficulty    string `form:"difficulty" json:"difficulty" binding:"omitempty,max=16"`
	HumanColor    string `form:"human_color" json:"humanColor" binding:"omitempty,max=16"`
	ComputerColor string `form:"computer_color" json:"computerColor" binding:"omitempty,max=16"`
}

// Game merges the request over defaults.
func (r GameOptionsRequest) Game(defaults config.Game) config.Game {
	g := defaults
	if r.FirstPlayer != "" {
		g.FirstPlayer = r.FirstPlayer
	}
	if r.Difficulty != "" {
		g.Difficulty = r.Difficulty
	}
	if r.HumanColor != "" {
		g.HumanColor = r.HumanColor
	}
	if r.ComputerColor != "" {
		g.ComputerColor = r.ComputerColor
	}
	return g
}

// OptionsResponse lists what the configuration screen may offer.
type OptionsResponse struct {
	FirstPlayers   []string           `json:"firstPlayers"`
	Difficulties   []string           `json:"difficulties"`
	HumanColors    []string           `json:"humanColors"`
	ComputerColors []string           `json:"computerColors"`
	Defaults       GameOptionsRequest `json:"defaults"`
}
