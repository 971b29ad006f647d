package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/combobreaker/common"
	"github.com/milk9111/combobreaker/flow"
	"github.com/milk9111/combobreaker/prefabs"
	"go.uber.org/zap"
)

func main() {
	mode := flag.String("mode", "", "game mode: single_player or two_player (default from config)")
	configName := flag.String("config", prefabs.MatchFile, "match config in prefabs/")
	debug := flag.Bool("debug", false, "enable debug mode")
	watch := flag.Bool("watch", false, "reload prefabs/ when files change")
	seed := flag.Uint64("seed", 0, "bot seed (0 uses the config, then the clock)")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	m := flow.Mode(*mode)
	switch m {
	case "", flow.ModeSinglePlayer, flow.ModeTwoPlayer:
	default:
		logger.Fatal("unknown mode", zap.String("mode", *mode))
	}

	game, err := NewGame(gameOptions{
		configName: *configName,
		mode:       m,
		seed:       *seed,
		watch:      *watch,
		debug:      *debug,
	}, logger)
	if err != nil {
		logger.Fatal("start game", zap.Error(err))
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("combo breaker")

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run game", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
