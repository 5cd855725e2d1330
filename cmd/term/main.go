// cmd/term/main.go
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	game "go-space-shooter/internal/app"
	"go-space-shooter/internal/audio"
	"go-space-shooter/internal/audio/device"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	debugLog := flag.Bool("debug", false, "enable debug logging")
	logFile := flag.String("log", "", "write logs to this file (the terminal is taken by the game)")
	defsDir := flag.String("defs", "", "directory with definition files (default: built-in)")
	seed := flag.Int64("seed", 0, "random seed (0 - time based)")
	level := flag.String("level", config.DefaultLevel, "level ID, empty for no waves")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	logLevel := slog.LevelInfo
	if *debugLog {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: logLevel})))

	opts := game.Options{Level: *level, Seed: *seed}
	if *defsDir != "" {
		lib, err := defs.LoadDir(*defsDir)
		if err != nil {
			log.Fatal(err)
		}
		opts.Library = lib
	}
	if !*mute {
		if speaker, err := newSpeaker(); err != nil {
			slog.Warn("audio disabled", "err", err)
		} else {
			defer speaker.Close()
			opts.Sounds = speaker
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	session, err := term.NewSession(screen, opts)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	session.Run(ctx)

	stats := session.Game().StatsSystem.Stats()
	slog.Info("session ended", "score", session.Game().Match.Score(), "kills", stats.Kills)
}

func newSpeaker() (*device.SpeakerOutput, error) {
	bank, err := audio.NewBank(config.AudioSampleRate)
	if err != nil {
		return nil, err
	}
	return device.NewSpeakerOutput(bank)
}
