package entity

// Kind discriminates the closed set of entity variants.
type Kind int

const (
	KindPlatform Kind = iota
	KindPlayer
	KindWalker
	KindTurret
	KindFlyer
	KindBullet
	KindEnemyBullet
	KindParticle
	KindItem
	KindDoor
	KindTube
)

var kindNames = [...]string{
	KindPlatform:    "Platform",
	KindPlayer:      "Player",
	KindWalker:      "Walker",
	KindTurret:      "Turret",
	KindFlyer:       "Flyer",
	KindBullet:      "Bullet",
	KindEnemyBullet: "EnemyBullet",
	KindParticle:    "Particle",
	KindItem:        "Item",
	KindDoor:        "Door",
	KindTube:        "Tube",
}

// String returns the variant name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// IsEnemy reports whether the kind is one of the enemy variants.
func (k Kind) IsEnemy() bool {
	return k == KindWalker || k == KindTurret || k == KindFlyer
}

// Box is an axis-aligned rectangle with a top-left origin; y grows downward.
type Box struct {
	X, Y, W, H float64
}

// Right returns the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// Overlaps reports strict intersection. Boxes sharing only an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.X+o.W && b.X+b.W > o.X && b.Y < o.Y+o.H && b.Y+b.H > o.Y
}

// ContainsX reports whether x lies within the horizontal span, edges included.
func (b Box) ContainsX(x float64) bool {
	return x >= b.X && x <= b.X+b.W
}

// Entity is implemented by every live variant.
type Entity interface {
	Kind() Kind
	Bounds() Box
	Snapshot() Snapshot
}

// Snapshot is the read-only view handed to renderers.
type Snapshot struct {
	Kind    Kind
	Box     Box
	Facing  int
	Phase   float64 // animation phase
	Flash   int     // hit flash, i-frames or muzzle flash frames left
	Fade    float64 // 1 for opaque, particles fade towards 0
	Variant string  // item type, powerup, tint or "hidden"
}

var (
	_ Entity = (*Player)(nil)
	_ Entity = (*Enemy)(nil)
	_ Entity = (*Bullet)(nil)
	_ Entity = (*Particle)(nil)
	_ Entity = (*Item)(nil)
	_ Entity = (*Door)(nil)
	_ Entity = (*Tube)(nil)
	_ Entity = Platform{}
)
