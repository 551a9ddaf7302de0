package entity

// ParticleDrift is the downward acceleration applied to particles each tick.
const ParticleDrift = 0.15

// Tint names the particle palette entry.
type Tint string

const (
	TintDust   Tint = "dust"
	TintSpark  Tint = "spark"
	TintMuzzle Tint = "muzzle"
	TintHit    Tint = "hit"
	TintJump   Tint = "jump"
)

// Particle is a short-lived cosmetic entity.
type Particle struct {
	Body

	Life    int
	MaxLife int
	Tint    Tint
}

// NewParticle creates a square particle of the given size.
func NewParticle(x, y, vx, vy, size float64, life int, tint Tint) *Particle {
	return &Particle{
		Body:    Body{X: x, Y: y, W: size, H: size, VX: vx, VY: vy},
		Life:    life,
		MaxLife: life,
		Tint:    tint,
	}
}

// Kind implements Entity.
func (p *Particle) Kind() Kind { return KindParticle }

// Advance integrates velocity, applies drift and ages the particle.
func (p *Particle) Advance() {
	p.X += p.VX
	p.Y += p.VY
	p.VY += ParticleDrift
	p.Life--
	if p.Life <= 0 {
		p.Removed = true
	}
}

// Fade is the remaining fraction of the particle's life.
func (p *Particle) Fade() float64 {
	if p.MaxLife <= 0 || p.Life <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Snapshot implements Entity.
func (p *Particle) Snapshot() Snapshot {
	return Snapshot{Kind: KindParticle, Box: p.Bounds(), Fade: p.Fade(), Variant: string(p.Tint)}
}
