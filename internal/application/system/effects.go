package system

import (
	"math/rand"

	"github.com/younwookim/tubejump/internal/domain/entity"
)

// burst describes a spray of particles.
type burst struct {
	count   int
	spreadX float64 // vx drawn from [-spreadX, spreadX]
	vyMin   float64
	vyMax   float64
	biasX   float64 // added to every vx
	life    int
	size    float64
	tint    entity.Tint
}

var (
	jumpBurst   = burst{spreadX: 1.2, vyMin: -2.5, vyMax: -1, life: 14, size: 3, tint: entity.TintJump}
	dustBurst   = burst{count: 1, spreadX: 0.4, vyMin: -0.8, vyMax: -0.2, life: 12, size: 3, tint: entity.TintDust}
	muzzleBurst = burst{spreadX: 0.8, vyMin: -0.8, vyMax: 0.8, life: 8, size: 2, tint: entity.TintMuzzle}
	hitBurst    = burst{spreadX: 2, vyMin: -2.5, vyMax: 0.5, life: 16, size: 3, tint: entity.TintHit}
	sparkBurst  = burst{spreadX: 1.5, vyMin: -1.5, vyMax: 0.5, life: 10, size: 2, tint: entity.TintSpark}
)

// emit spawns n particles of the burst at (x, y).
func (b burst) emit(env *Env, x, y float64, n int) {
	if n <= 0 {
		n = b.count
	}
	for i := 0; i < n; i++ {
		vx := b.biasX + between(env.Rand, -b.spreadX, b.spreadX)
		vy := between(env.Rand, b.vyMin, b.vyMax)
		env.Host.AddParticle(entity.NewParticle(x, y, vx, vy, b.size, b.life, b.tint))
	}
}

func (b burst) withBias(vx float64) burst {
	b.biasX = vx
	return b
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// randInt returns a value in [0, n), or 0 when n <= 0.
func randInt(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.Intn(n)
}
