package system

import (
	"github.com/younwookim/tubejump/internal/domain/entity"
	"github.com/younwookim/tubejump/internal/infrastructure/config"
)

// ProjectileSystem moves bullets and retires them.
type ProjectileSystem struct {
	config *config.GameConfig
}

// NewProjectileSystem creates a new projectile system
func NewProjectileSystem(cfg *config.GameConfig) *ProjectileSystem {
	return &ProjectileSystem{config: cfg}
}

// Update moves a bullet one tick. Bullets die on solids, when their lifetime
// runs out, or once they are well outside the camera view.
func (s *ProjectileSystem) Update(b *entity.Bullet, env *Env) {
	if b.Removed {
		return
	}

	b.Advance()

	if env.SolidAt(b.Bounds()) {
		b.Removed = true
		sparkBurst.emit(env, b.X+b.W/2, b.Y+b.H/2, s.config.Entities.Effects.SparkParticles)
		return
	}

	margin := s.config.Entities.Bullets.CullMargin
	if b.X < env.CameraX-margin || b.X > env.CameraX+env.ViewportW+margin {
		b.Removed = true
	}
}
