// component/movement.go
package component

import "math"

// Position - позиция в мировых координатах. Ось Y направлена вверх,
// начало координат в центре экрана.
type Position struct {
	X, Y float64
}

func (p Position) Add(o Position) Position { return Position{p.X + o.X, p.Y + o.Y} }

func (p Position) Sub(o Position) Position { return Position{p.X - o.X, p.Y - o.Y} }

func (p Position) Scale(k float64) Position { return Position{p.X * k, p.Y * k} }

func (p Position) Len() float64 { return math.Hypot(p.X, p.Y) }

// Normalize returns the unit vector, or the zero vector for a zero input.
func (p Position) Normalize() Position {
	l := p.Len()
	if l == 0 {
		return Position{}
	}
	return Position{p.X / l, p.Y / l}
}

var (
	Up   = Position{X: 0, Y: 1}
	Down = Position{X: 0, Y: -1}
)
