// internal/system/utils.go
package system

import (
	"sort"
	"unicode/utf8"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/interfaces"
	"go-space-shooter/internal/types"
)

// sortedIDs возвращает ключи карты компонентов по возрастанию, чтобы порядок
// обновления не зависел от обхода map.
func sortedIDs[T any](m map[types.EntityID]*T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func glyphOf(v defs.Visuals, fallback rune) rune {
	if r, _ := utf8.DecodeRuneInString(v.Glyph); r != utf8.RuneError {
		return r
	}
	return fallback
}

func renderableOf(v defs.Visuals, width, height float64, fallback rune) *component.Renderable {
	return &component.Renderable{
		Color:  v.Color,
		Width:  float32(width),
		Height: float32(height),
		Glyph:  glyphOf(v, fallback),
	}
}

type nopPresenter struct{}

func (nopPresenter) UpdateScoreDisplay(string)              {}
func (nopPresenter) PlaySound(string, component.Position)   {}
func (nopPresenter) SpawnEffect(string, component.Position) {}

func presenterOrNop(p interfaces.Presenter) interfaces.Presenter {
	if p == nil {
		return nopPresenter{}
	}
	return p
}
