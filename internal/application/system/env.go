package system

import (
	"math/rand"
	"slices"

	"github.com/younwookim/tubejump/internal/domain/entity"
)

// Host receives everything a system produces besides direct mutation of
// the entities it was handed.
type Host interface {
	AddParticle(p *entity.Particle)
	AddBullet(b *entity.Bullet)
	AddItem(it *entity.Item)
	AddScore(n int)
	Emit(ev Event)
}

// Env is the read-only level context for one tick.
type Env struct {
	Solids      []entity.Box
	Index       *SolidIndex
	LevelLength float64
	CameraX     float64
	ViewportW   float64
	Frame       int
	Rand        *rand.Rand
	Host        Host
}

// SolidAt reports whether b overlaps any solid.
func (env *Env) SolidAt(b entity.Box) bool {
	if env.Index != nil {
		return env.Index.Overlaps(b)
	}
	for _, s := range env.Solids {
		if b.Overlaps(s) {
			return true
		}
	}
	return false
}

// ClampX keeps a body inside the horizontal level bounds.
func (env *Env) ClampX(b *entity.Body) {
	maxX := env.LevelLength - b.W
	if maxX < 0 {
		maxX = 0
	}
	if b.X < 0 {
		b.X = 0
	} else if b.X > maxX {
		b.X = maxX
	}
}

// Actors groups the live collections a tick operates on.
type Actors struct {
	Enemies      []*entity.Enemy
	Bullets      []*entity.Bullet
	EnemyBullets []*entity.Bullet
	Items        []*entity.Item
	Doors        []*entity.Door
	Tubes        []*entity.Tube
	Particles    []*entity.Particle
}

// Reset drops every collection.
func (a *Actors) Reset() {
	*a = Actors{}
}

// Compact removes every entity flagged for removal.
func (a *Actors) Compact() {
	a.Enemies = slices.DeleteFunc(a.Enemies, func(e *entity.Enemy) bool { return e.Removed })
	a.Bullets = slices.DeleteFunc(a.Bullets, func(b *entity.Bullet) bool { return b.Removed })
	a.EnemyBullets = slices.DeleteFunc(a.EnemyBullets, func(b *entity.Bullet) bool { return b.Removed })
	a.Items = slices.DeleteFunc(a.Items, func(it *entity.Item) bool { return it.Removed })
	a.Particles = slices.DeleteFunc(a.Particles, func(p *entity.Particle) bool { return p.Removed })
}
