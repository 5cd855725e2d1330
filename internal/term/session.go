// internal/term/session.go
package term

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	game "go-space-shooter/internal/app"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/interfaces"

	"github.com/gdamore/tcell/v2"
)

// Session ведёт матч в терминале: события клавиатуры, тики и отрисовка.
type Session struct {
	screen   tcell.Screen
	opts     game.Options
	input    *HoldInput
	renderer *Renderer
	game     *game.Game
	elapsed  float64
}

// NewSession starts a match. opts.Input is replaced by the terminal input.
func NewSession(screen tcell.Screen, opts game.Options) (*Session, error) {
	in := NewHoldInput(config.TermHoldWindow)
	opts.Input = in
	g, err := game.NewGame(opts)
	if err != nil {
		return nil, err
	}
	return &Session{
		screen:   screen,
		opts:     opts,
		input:    in,
		renderer: NewRenderer(screen),
		game:     g,
	}, nil
}

func (s *Session) Game() *game.Game { return s.game }

// HandleEvent reports false when the player asked to quit.
func (s *Session) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return false
		}
		s.input.HandleKey(ev)
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

// Step advances the match by dt and redraws the screen.
func (s *Session) Step(dt float64) {
	s.elapsed += dt
	s.input.SetTime(s.elapsed)

	if s.input.WasKeyPressed(interfaces.KeyReset) {
		if next, err := game.NewGame(s.opts); err != nil {
			slog.Error("failed to restart match", "err", err)
		} else {
			s.game = next
		}
	}
	if s.input.WasKeyPressed(interfaces.KeyPause) {
		s.game.TogglePause()
	}
	s.game.Update(dt)
	s.input.EndTick()

	halfWidth, halfHeight := s.game.Match.Bounds()
	s.renderer.Draw(s.game.ECS, halfWidth, halfHeight, s.hudText())
}

func (s *Session) hudText() string {
	text := s.game.ScoreText()
	if wave := s.game.WaveSystem.Wave(); wave > 0 {
		text += fmt.Sprintf("  wave %d", wave)
	}
	if s.game.IsPaused() {
		text += "  PAUSED"
	}
	return text
}

// Run polls events on a separate goroutine and ticks at config.TermTickRate
// until ctx is done or the player quits.
func (s *Session) Run(ctx context.Context) {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return // экран закрыт
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / config.TermTickRate)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !s.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), config.MaxDeltaTime)
			last = now
			s.Step(dt)
		}
	}
}
