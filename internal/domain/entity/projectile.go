package entity

// Bullet is a straight-flying projectile. Hostile bullets are fired by turrets.
type Bullet struct {
	Body

	Damage   int
	Lifetime int
	Hostile  bool
}

// NewBullet creates a bullet moving horizontally in dir (+1 or -1).
func NewBullet(x, y float64, dir int, speed float64, damage, lifetime int, hostile bool) *Bullet {
	return &Bullet{
		Body: Body{
			X: x, Y: y,
			W: BulletWidth, H: BulletHeight,
			VX: float64(dir) * speed,
		},
		Damage:   damage,
		Lifetime: lifetime,
		Hostile:  hostile,
	}
}

// Kind implements Entity.
func (b *Bullet) Kind() Kind {
	if b.Hostile {
		return KindEnemyBullet
	}
	return KindBullet
}

// Advance moves the bullet one tick and counts down its lifetime.
func (b *Bullet) Advance() {
	b.X += b.VX
	b.Y += b.VY
	b.Lifetime--
	if b.Lifetime <= 0 {
		b.Removed = true
	}
}

// Snapshot implements Entity.
func (b *Bullet) Snapshot() Snapshot {
	facing := 1
	if b.VX < 0 {
		facing = -1
	}
	return Snapshot{Kind: b.Kind(), Box: b.Bounds(), Facing: facing, Fade: 1}
}
