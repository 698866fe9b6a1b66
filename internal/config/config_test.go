package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctchen222/minimax-tictactoe/internal/bot"
	"ctchen222/minimax-tictactoe/internal/player"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
log-level: debug
game:
  first-player: computer
  difficulty: Easy
  human-color: green
  computer-color: "#ff8800"
  seed: 7
http:
  addr: ":9000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, uint64(7), cfg.Game.Seed)
	assert.Equal(t, "tic-tac-toe", cfg.Telemetry.ServiceName)

	settings, err := cfg.Game.Settings()
	require.NoError(t, err)
	assert.Equal(t, player.Computer, settings.FirstPlayer)
	assert.Equal(t, bot.Easy, settings.Difficulty)
	assert.Equal(t, "green", settings.HumanColor)
	assert.Equal(t, "#ff8800", settings.ComputerColor)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.True(t, cfg.Game.Pruning)

	settings, err := cfg.Game.Settings()
	require.NoError(t, err)
	assert.Equal(t, player.Human, settings.FirstPlayer)
	assert.Equal(t, bot.Hard, settings.Difficulty)
	assert.Equal(t, "blue", settings.HumanColor)
	assert.Equal(t, "red", settings.ComputerColor)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("DIFFICULTY", "medium")
	t.Setenv("HTTP_ADDR", ":7070")

	cfg, err := Load(writeConfig(t, "game:\n  difficulty: easy\n"))
	require.NoError(t, err)

	assert.Equal(t, "medium", cfg.Game.Difficulty)
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
}

func TestLoadRejectsInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown difficulty", content: "game:\n  difficulty: impossible\n"},
		{name: "unknown first player", content: "game:\n  first-player: nobody\n"},
		{name: "same colors", content: "game:\n  human-color: red\n  computer-color: red\n"},
		{name: "unknown color", content: "game:\n  human-color: chartreuse\n"},
		{name: "unknown log level", content: "log-level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestGameSettingsWrapsParseErrors(t *testing.T) {
	g := Game{FirstPlayer: "human", Difficulty: "impossible", HumanColor: "blue", ComputerColor: "red"}

	_, err := g.Settings()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.ErrorIs(t, err, bot.ErrUnknownDifficulty)

	g = Game{FirstPlayer: "nobody", Difficulty: "hard", HumanColor: "blue", ComputerColor: "red"}
	_, err = g.Settings()
	assert.ErrorIs(t, err, player.ErrUnknownSide)
}

func TestGameSettingsColorsCompareCaseInsensitively(t *testing.T) {
	g := Game{FirstPlayer: "human", Difficulty: "hard", HumanColor: "Blue", ComputerColor: "blue"}

	_, err := g.Settings()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestPickerOptions(t *testing.T) {
	assert.Empty(t, Game{}.PickerOptions())
	assert.Len(t, Game{Seed: 3, Pruning: true}.PickerOptions(), 2)
}
