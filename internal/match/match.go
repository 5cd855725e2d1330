// Package match holds the per-match score, game-over flag and screen bounds.
// A Match is created once at match start, before any ship is spawned, and is
// passed explicitly to every system that needs it.
package match

import (
	"fmt"
	"log/slog"
	"strings"

	"go-space-shooter/internal/debug"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/interfaces"

	"github.com/google/uuid"
)

const (
	heart = "♥"
	// GameOverText replaces the hearts once the match has ended.
	GameOverText = "Game Over!"
)

// Bounds is the playfield rectangle, centred on the origin.
type Bounds struct {
	HalfWidth, HalfHeight float64
}

// Match - состояние матча. Not safe for concurrent use: the simulation is
// single-threaded.
type Match struct {
	id        string
	score     int
	gameOver  bool
	bounds    Bounds
	display   interfaces.ScoreDisplay
	events    *event.Dispatcher
	hitPoints func() (int, bool)
}

// New starts a match. display and events may be nil.
func New(bounds Bounds, display interfaces.ScoreDisplay, events *event.Dispatcher) *Match {
	m := &Match{
		id:      uuid.NewString(),
		bounds:  bounds,
		display: display,
		events:  events,
	}
	slog.Debug("match started", "match", m.id,
		"halfWidth", bounds.HalfWidth, "halfHeight", bounds.HalfHeight)
	m.RefreshDisplay()
	return m
}

func (m *Match) ID() string   { return m.id }
func (m *Match) Score() int   { return m.score }
func (m *Match) IsOver() bool { return m.gameOver }

// Bounds returns the half-width and half-height of the playfield.
func (m *Match) Bounds() (halfWidth, halfHeight float64) {
	return m.bounds.HalfWidth, m.bounds.HalfHeight
}

// SetBounds changes the playfield size; bound checks read it every tick.
func (m *Match) SetBounds(b Bounds) {
	m.bounds = b
}

// SetHitPointSource tells the display where to read the player's
// hit-points. The source reports false once there is no player.
func (m *Match) SetHitPointSource(src func() (int, bool)) {
	m.hitPoints = src
	m.RefreshDisplay()
}

// AddScore increases the score. Negative amounts are rejected.
func (m *Match) AddScore(amount int) {
	if !debug.Invariant(amount >= 0, "negative score %d", amount) {
		return
	}
	m.score += amount
	m.events.Dispatch(event.Event{
		Type: event.ScoreAwarded,
		Data: event.ScoreData{Amount: amount, Total: m.score},
	})
	m.RefreshDisplay()
}

// SetGameOver ends the match. Calling it again has no effect.
func (m *Match) SetGameOver() {
	if m.gameOver {
		return
	}
	m.gameOver = true
	slog.Info("game over", "match", m.id, "score", m.score)
	m.events.Dispatch(event.Event{Type: event.GameOver, Data: m.score})
	m.RefreshDisplay()
}

// Text renders the score line followed by hit-point hearts, or by the game
// over notice once the match has ended.
func (m *Match) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%08d", m.score)
	if m.gameOver {
		b.WriteString("\n" + GameOverText)
		return b.String()
	}
	if m.hitPoints != nil {
		if hp, ok := m.hitPoints(); ok {
			b.WriteString("\n")
			if hp > 0 {
				b.WriteString(strings.Repeat(heart, hp))
			}
		}
	}
	return b.String()
}

// RefreshDisplay pushes the current text to the display.
func (m *Match) RefreshDisplay() {
	if m.display == nil {
		return
	}
	m.display.UpdateScoreDisplay(m.Text())
}
