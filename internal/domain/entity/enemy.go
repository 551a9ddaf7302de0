package entity

// HitFlashFrames is how long an enemy flashes after taking a hit.
const HitFlashFrames = 8

// Enemy is a walker, turret or flyer, told apart by Type.
type Enemy struct {
	Body

	Type       Kind
	HP         int
	MaxHP      int
	Facing     int
	HitFlash   int
	Speed      float64
	Cooldown   int
	DropChance float64
	OnGround   bool
	Phase      float64
}

// NewEnemy creates an enemy of the given kind with its variant size.
func NewEnemy(kind Kind, x, y float64, hp int, speed, dropChance float64) *Enemy {
	w, h := EnemySize(kind)
	return &Enemy{
		Body:       Body{X: x, Y: y, W: w, H: h},
		Type:       kind,
		HP:         hp,
		MaxHP:      hp,
		Facing:     -1,
		Speed:      speed,
		DropChance: dropChance,
	}
}

// EnemySize returns the hitbox size for an enemy kind.
func EnemySize(kind Kind) (w, h float64) {
	switch kind {
	case KindWalker:
		return WalkerWidth, WalkerHeight
	case KindTurret:
		return TurretWidth, TurretHeight
	case KindFlyer:
		return FlyerWidth, FlyerHeight
	default:
		return 0, 0
	}
}

// Kind implements Entity.
func (e *Enemy) Kind() Kind { return e.Type }

// TakeHit subtracts hit points and starts the hit flash.
// Returns true if the enemy died from this hit.
func (e *Enemy) TakeHit(damage int) bool {
	if e.Removed {
		return false
	}
	e.HP -= damage
	e.HitFlash = HitFlashFrames
	if e.HP <= 0 {
		e.Removed = true
		return true
	}
	return false
}

// IsAlive returns true if the enemy can still interact.
func (e *Enemy) IsAlive() bool {
	return !e.Removed && e.HP > 0
}

// FaceToward turns the enemy toward x.
func (e *Enemy) FaceToward(x float64) {
	if x < e.X {
		e.Facing = -1
	} else {
		e.Facing = 1
	}
}

// Snapshot implements Entity.
func (e *Enemy) Snapshot() Snapshot {
	return Snapshot{
		Kind:   e.Type,
		Box:    e.Bounds(),
		Facing: e.Facing,
		Phase:  e.Phase,
		Flash:  e.HitFlash,
		Fade:   1,
	}
}
