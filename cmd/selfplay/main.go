package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"ctchen222/minimax-tictactoe/internal/bot"
	"ctchen222/minimax-tictactoe/internal/game"
	"ctchen222/minimax-tictactoe/internal/grid"
	"ctchen222/minimax-tictactoe/internal/logger"
	"ctchen222/minimax-tictactoe/internal/player"
	"ctchen222/minimax-tictactoe/internal/session"
)

// selfplay pits a bot playing X against the computer over the grid protocol and prints how
// the games ended.
func main() {
	games := flag.Int("games", 100, "Number of games to play")
	first := flag.String("first", "human", "Side that opens every game (human or computer)")
	xDifficulty := flag.String("x", "hard", "Difficulty of the bot playing X")
	oDifficulty := flag.String("o", "hard", "Difficulty of the computer playing O")
	seed := flag.Uint64("seed", 0, "Seed for both bots; 0 picks a random one")
	flag.Parse()

	logger.Init(os.Stderr, slog.LevelWarn)

	if err := run(*games, *first, *xDifficulty, *oDifficulty, *seed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(games int, first, xDifficulty, oDifficulty string, seed uint64) error {
	if games < 1 {
		return fmt.Errorf("games must be positive, got %d", games)
	}
	side, err := player.ParseSide(first)
	if err != nil {
		return err
	}
	x, err := bot.ParseDifficulty(xDifficulty)
	if err != nil {
		return err
	}
	o, err := bot.ParseDifficulty(oDifficulty)
	if err != nil {
		return err
	}

	oSeed := seed
	if seed != 0 {
		oSeed = seed + 1
	}

	settings := session.Settings{FirstPlayer: side, Difficulty: o, HumanColor: "blue", ComputerColor: "red"}
	p, conn := bot.NewBotPlayer("selfplay", x, games, bot.NewPicker(bot.WithSeed(seed), bot.WithPruning()))
	d := grid.NewDriver(p, settings)

	ctx := context.Background()
	if err := d.Assign(ctx); err != nil {
		return err
	}
	runner := session.NewRunner(settings, bot.NewPicker(bot.WithSeed(oSeed), bot.WithPruning()))
	if err := runner.Run(ctx, d); err != nil {
		return err
	}

	outcomes := conn.Outcomes()
	fmt.Printf("%d games, X %s vs O %s, %s first\n", games, x, o, side)
	for _, outcome := range []game.Outcome{game.PlayerWin, game.ComputerWin, game.Draw} {
		fmt.Printf("  %-12s %d\n", outcome, outcomes[outcome.String()])
	}
	return nil
}
