// internal/types/types.go
package types

// EntityID - идентификатор сущности в ECS. Ноль никогда не выдаётся.
type EntityID uint64

// Pair is an unordered pair of entities, stored with A < B.
type Pair struct {
	A, B EntityID
}

// NewPair normalizes the order so that (a, b) and (b, a) compare equal.
func NewPair(a, b EntityID) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Other returns the member of the pair that is not id.
func (p Pair) Other(id EntityID) EntityID {
	if p.A == id {
		return p.B
	}
	return p.A
}
