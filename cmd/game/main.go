// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	game "go-space-shooter/internal/app"
	"go-space-shooter/internal/audio"
	"go-space-shooter/internal/audio/device"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	debugLog := flag.Bool("debug", false, "enable debug logging")
	defsDir := flag.String("defs", "", "directory with definition files (default: built-in)")
	seed := flag.Int64("seed", 0, "random seed (0 - time based)")
	level := flag.String("level", config.DefaultLevel, "level ID, empty for no waves")
	skipMenu := flag.Bool("play", false, "start from the game instead of the menu")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *debugLog {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	opts := game.Options{Level: *level, Seed: *seed}
	if *defsDir != "" {
		lib, err := defs.LoadDir(*defsDir)
		if err != nil {
			log.Fatal(err)
		}
		opts.Library = lib
	}

	bank, err := audio.NewBank(config.AudioSampleRate)
	if err != nil {
		// без звука играть можно
		slog.Warn("audio disabled", "err", err)
	} else {
		opts.Sounds = device.NewEbitenOutput(bank)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if *skipMenu {
		gs, err := state.NewGameState(sm, opts)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, opts))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth*2, config.ScreenHeight*2)
	ebiten.SetWindowTitle("Space Shooter")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
