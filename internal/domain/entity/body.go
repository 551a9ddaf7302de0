package entity

// Entity sizes in pixels.
const (
	PlayerWidth  = 28
	PlayerHeight = 42
	WalkerWidth  = 30
	WalkerHeight = 40
	TurretWidth  = 32
	TurretHeight = 32
	FlyerWidth   = 28
	FlyerHeight  = 24
	ItemSize     = 20
	DoorSize     = 40
	TubeWidth    = 40
	TubeHeight   = 48
	BulletWidth  = 12
	BulletHeight = 4
)

// Body is the physical part shared by every variant.
// Position and velocity are in pixels and pixels per tick.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64

	// Removed marks the entity for end-of-tick compaction.
	Removed bool
}

// Bounds returns the body's rectangle.
func (b *Body) Bounds() Box {
	return Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Powerup is a timed player boost.
type Powerup int

const (
	PowerupNone Powerup = iota
	PowerupHaste
	PowerupPower
)

// String returns the lower-case powerup name used in level data and snapshots.
func (p Powerup) String() string {
	switch p {
	case PowerupHaste:
		return "haste"
	case PowerupPower:
		return "power"
	default:
		return "none"
	}
}

// Player represents the player entity
type Player struct {
	Body

	Facing   int // +1 right, -1 left
	OnGround bool

	Coyote     int // frames left to jump after leaving ground
	JumpBuffer int // frames left for a buffered jump press

	Health    int
	MaxHealth int
	Keys      int

	IFrames     int
	ContactTick int
	ShootFlash  int
	RunPhase    float64

	Powerup      Powerup
	PowerupTimer int
}

// NewPlayer creates a player at the given top-left position
func NewPlayer(x, y float64, maxHealth int) *Player {
	return &Player{
		Body:      Body{X: x, Y: y, W: PlayerWidth, H: PlayerHeight},
		Facing:    1,
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
}

// Kind implements Entity.
func (p *Player) Kind() Kind { return KindPlayer }

// TakeDamage applies damage unless i-frames are active.
// Returns true if this hit depleted health.
func (p *Player) TakeDamage(amount, iframes int) bool {
	if p.IFrames > 0 {
		return false
	}
	p.Health -= amount
	p.IFrames = iframes
	return p.Health <= 0
}

// Heal restores health up to MaxHealth.
func (p *Player) Heal(amount int) {
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// ActivatePowerup replaces any running powerup and restarts the timer.
func (p *Player) ActivatePowerup(kind Powerup, frames int) {
	p.Powerup = kind
	p.PowerupTimer = frames
}

// HasPowerup reports whether the given powerup is running.
func (p *Player) HasPowerup(kind Powerup) bool {
	return p.Powerup == kind && p.PowerupTimer > 0
}

// TickTimers counts down the per-frame player timers.
func (p *Player) TickTimers() {
	if p.IFrames > 0 {
		p.IFrames--
	}
	if p.ShootFlash > 0 {
		p.ShootFlash--
	}
	if p.ContactTick > 0 {
		p.ContactTick--
	}
	if p.PowerupTimer > 0 {
		p.PowerupTimer--
		if p.PowerupTimer == 0 {
			p.Powerup = PowerupNone
		}
	}
}

// Snapshot implements Entity.
func (p *Player) Snapshot() Snapshot {
	flash := p.IFrames
	if p.ShootFlash > flash {
		flash = p.ShootFlash
	}
	return Snapshot{
		Kind:    KindPlayer,
		Box:     p.Bounds(),
		Facing:  p.Facing,
		Phase:   p.RunPhase,
		Flash:   flash,
		Fade:    1,
		Variant: p.Powerup.String(),
	}
}
