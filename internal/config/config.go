package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"ctchen222/minimax-tictactoe/internal/bot"
	"ctchen222/minimax-tictactoe/internal/player"
	"ctchen222/minimax-tictactoe/internal/session"
	"ctchen222/minimax-tictactoe/internal/validator"
)

const DefaultPath = "config.yml"

var ErrInvalidConfiguration = errors.New("invalid configuration")

// Colors offered by the configuration screen.
var (
	HumanPalette    = []string{"blue", "green", "purple", "yellow"}
	ComputerPalette = []string{"red", "orange", "black", "brown"}
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Game      Game      `yaml:"game"`
	HTTP      HTTP      `yaml:"http"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Game holds the settings chosen before a session starts.
type Game struct {
	FirstPlayer   string `yaml:"first-player" env:"FIRST_PLAYER" env-default:"human" validate:"required"`
	Difficulty    string `yaml:"difficulty" env:"DIFFICULTY" env-default:"hard" validate:"required"`
	HumanColor    string `yaml:"human-color" env:"HUMAN_COLOR" env-default:"blue" validate:"required,displaycolor"`
	ComputerColor string `yaml:"computer-color" env:"COMPUTER_COLOR" env-default:"red" validate:"required,displaycolor,nefield=HumanColor"`
	Seed          uint64 `yaml:"seed" env:"SEED"`
	Pruning       bool   `yaml:"pruning" env:"PRUNING" env-default:"true"`
}

type HTTP struct {
	Addr string `yaml:"addr" env:"HTTP_ADDR" env-default:":8080" validate:"required"`
}

// Telemetry is disabled when Endpoint is empty.
type Telemetry struct {
	Endpoint    string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tic-tac-toe"`
	Stdout      bool   `yaml:"stdout" env:"OTEL_STDOUT"`
}

// Load reads the configuration file at path, overlaid by environment variables. A missing file
// falls back to environment variables and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if _, statErr := os.Stat(path); path != "" && statErr == nil {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: unable to load config: %w", ErrInvalidConfiguration, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field, including the game settings.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if err := validator.GetValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	_, err := c.Game.Settings()
	return err
}

func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Settings validates the game options and converts them to session settings.
func (g Game) Settings() (session.Settings, error) {
	g.HumanColor = strings.ToLower(strings.TrimSpace(g.HumanColor))
	g.ComputerColor = strings.ToLower(strings.TrimSpace(g.ComputerColor))
	if err := validator.GetValidator().Struct(g); err != nil {
		return session.Settings{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	first, err := player.ParseSide(g.FirstPlayer)
	if err != nil {
		return session.Settings{}, fmt.Errorf("%w: first player: %w", ErrInvalidConfiguration, err)
	}

	difficulty, err := bot.ParseDifficulty(g.Difficulty)
	if err != nil {
		return session.Settings{}, fmt.Errorf("%w: difficulty: %w", ErrInvalidConfiguration, err)
	}

	return session.Settings{
		FirstPlayer:   first,
		Difficulty:    difficulty,
		HumanColor:    g.HumanColor,
		ComputerColor: g.ComputerColor,
	}, nil
}

// PickerOptions returns the bot options implied by the game settings.
func (g Game) PickerOptions() []bot.Option {
	var options []bot.Option
	if g.Seed != 0 {
		options = append(options, bot.WithSeed(g.Seed))
	}
	if g.Pruning {
		options = append(options, bot.WithPruning())
	}
	return options
}
