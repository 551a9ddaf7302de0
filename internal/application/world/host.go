package world

import (
	"github.com/younwookim/tubejump/internal/application/system"
	"github.com/younwookim/tubejump/internal/domain/entity"
)

var _ system.Host = (*World)(nil)

// AddParticle implements system.Host.
func (w *World) AddParticle(p *entity.Particle) {
	w.Particles = append(w.Particles, p)
}

// AddBullet implements system.Host. Hostile bullets go to the enemy list.
func (w *World) AddBullet(b *entity.Bullet) {
	if b.Hostile {
		w.EnemyBullets = append(w.EnemyBullets, b)
		return
	}
	w.Bullets = append(w.Bullets, b)
}

// AddItem implements system.Host.
func (w *World) AddItem(it *entity.Item) {
	w.Items = append(w.Items, it)
}

// AddScore implements system.Host.
func (w *World) AddScore(n int) {
	w.Score += n
}

// Emit implements system.Host.
func (w *World) Emit(ev system.Event) {
	if w.OnEvent != nil {
		w.OnEvent(ev)
	}
}
