// internal/physics/space.go

// Package physics is the collision substrate: a resolv space holding one
// axis-aligned box per ship and projectile.
package physics

import (
	"sort"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/interfaces"
	"go-space-shooter/internal/types"

	"github.com/solarlune/resolv"
)

// Margin keeps bodies spawned on the screen edge inside the resolv grid.
const Margin = 64

var (
	tagShip       = resolv.NewTag("ship")
	tagProjectile = resolv.NewTag("projectile")
)

var _ interfaces.Spatial = (*Space)(nil)

type body struct {
	id    types.EntityID
	kind  interfaces.BodyKind
	shape resolv.IShape
	pos   component.Position
}

// Space maps world coordinates (origin at the centre, Y up) onto a resolv
// space (origin top-left, Y down).
type Space struct {
	space   *resolv.Space
	offsetX float64
	offsetY float64
	bodies  map[types.EntityID]*body
	owners  map[resolv.IShape]types.EntityID
}

// NewSpace creates a space covering the playfield plus Margin on every side.
func NewSpace(halfWidth, halfHeight float64, cellSize int) *Space {
	w := int(2*(halfWidth+Margin)) + 1
	h := int(2*(halfHeight+Margin)) + 1
	return &Space{
		space:   resolv.NewSpace(w, h, cellSize, cellSize),
		offsetX: halfWidth + Margin,
		offsetY: halfHeight + Margin,
		bodies:  make(map[types.EntityID]*body),
		owners:  make(map[resolv.IShape]types.EntityID),
	}
}

func (s *Space) toSpace(p component.Position) (float64, float64) {
	return p.X + s.offsetX, s.offsetY - p.Y
}

// Add registers a body centred on at. Adding an existing ID replaces it.
func (s *Space) Add(id types.EntityID, kind interfaces.BodyKind, at component.Position, width, height float64) {
	s.Remove(id)
	x, y := s.toSpace(at)
	shape := resolv.NewRectangleTopLeft(x-width/2, y-height/2, width, height)
	switch kind {
	case interfaces.BodyShip:
		shape.Tags().Set(tagShip)
	case interfaces.BodyProjectile:
		shape.Tags().Set(tagProjectile)
	}
	s.space.Add(shape)
	s.bodies[id] = &body{id: id, kind: kind, shape: shape, pos: at}
	s.owners[shape] = id
}

// Move recentres a body. Unknown IDs are ignored.
func (s *Space) Move(id types.EntityID, at component.Position) {
	b, ok := s.bodies[id]
	if !ok {
		return
	}
	b.pos = at
	b.shape.SetPosition(s.toSpace(at))
}

// Remove drops a body. Unknown IDs are ignored.
func (s *Space) Remove(id types.EntityID) {
	b, ok := s.bodies[id]
	if !ok {
		return
	}
	s.space.Remove(b.shape)
	delete(s.owners, b.shape)
	delete(s.bodies, id)
}

// Len returns the number of registered bodies.
func (s *Space) Len() int {
	return len(s.bodies)
}

// Sweep tests a box spanning the segment from→to, padded by width/2 on every
// side, against all ships. Results are ordered nearest to from first.
func (s *Space) Sweep(from, to component.Position, width float64) []types.EntityID {
	minX, maxX := from.X, to.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := from.Y, to.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	half := width / 2
	w := maxX - minX + width
	h := maxY - minY + width
	x, y := s.toSpace(component.Position{X: minX - half, Y: maxY + half})

	path := resolv.NewRectangleTopLeft(x, y, w, h)
	s.space.Add(path)
	defer s.space.Remove(path)

	var hits []types.EntityID
	area := path.Bounds()
	path.SelectTouchingCells(0).FilterShapes().ByTags(tagShip).ForEach(func(other resolv.IShape) bool {
		if id, ok := s.owners[other]; ok && boxesOverlap(area, other.Bounds()) {
			hits = append(hits, id)
		}
		return true
	})

	sort.SliceStable(hits, func(i, j int) bool {
		di := s.bodies[hits[i]].pos.Sub(from).Len()
		dj := s.bodies[hits[j]].pos.Sub(from).Len()
		return di < dj
	})
	return dedupe(hits)
}

// Overlaps returns every overlapping pair that involves at least one ship.
// Projectile/projectile pairs are never reported.
func (s *Space) Overlaps() []types.Pair {
	seen := make(map[types.Pair]struct{})
	var pairs []types.Pair
	for _, b := range s.bodies {
		if b.kind != interfaces.BodyShip {
			continue
		}
		area := b.shape.Bounds()
		b.shape.SelectTouchingCells(0).FilterShapes().ForEach(func(other resolv.IShape) bool {
			id, ok := s.owners[other]
			if !ok || id == b.id || !boxesOverlap(area, other.Bounds()) {
				return true
			}
			p := types.NewPair(b.id, id)
			if _, dup := seen[p]; !dup {
				seen[p] = struct{}{}
				pairs = append(pairs, p)
			}
			return true
		})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}

// Overlapping reports whether both bodies exist and their boxes overlap now.
func (s *Space) Overlapping(a, b types.EntityID) bool {
	ba, ok := s.bodies[a]
	if !ok {
		return false
	}
	bb, ok := s.bodies[b]
	if !ok {
		return false
	}
	return boxesOverlap(ba.shape.Bounds(), bb.shape.Bounds())
}

// boxesOverlap - пересечение по площади: касание рёбрами не считается,
// вложенный бокс считается.
func boxesOverlap(a, b resolv.Bounds) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X &&
		a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

func dedupe(ids []types.EntityID) []types.EntityID {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[types.EntityID]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
