package system

import (
	"math"

	"github.com/younwookim/tubejump/internal/domain/entity"
	"github.com/younwookim/tubejump/internal/infrastructure/config"
)

// Guard rejects bodies that left the playable envelope or hold non-finite
// coordinates.
type Guard struct {
	bounds config.BoundsConfig
}

// NewGuard creates a guard for the given envelope.
func NewGuard(bounds config.BoundsConfig) Guard {
	return Guard{bounds: bounds}
}

// Valid reports whether b may stay in the world.
func (g Guard) Valid(b *entity.Body) bool {
	if !finite(b.X) || !finite(b.Y) {
		return false
	}
	return b.X >= g.bounds.MinX && b.X <= g.bounds.MaxX &&
		b.Y >= g.bounds.MinY && b.Y <= g.bounds.MaxY
}

// Sweep flags every invalid entity in the actor collections.
func (g Guard) Sweep(a *Actors) {
	for _, e := range a.Enemies {
		if !g.Valid(&e.Body) {
			e.Removed = true
		}
	}
	for _, b := range a.Bullets {
		if !g.Valid(&b.Body) {
			b.Removed = true
		}
	}
	for _, b := range a.EnemyBullets {
		if !g.Valid(&b.Body) {
			b.Removed = true
		}
	}
	for _, p := range a.Particles {
		if !g.Valid(&p.Body) {
			p.Removed = true
		}
	}
	for _, it := range a.Items {
		if !g.Valid(&it.Body) {
			it.Removed = true
		}
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
