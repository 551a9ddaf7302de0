package system

import (
	"math"

	"github.com/younwookim/tubejump/internal/domain/entity"
	"github.com/younwookim/tubejump/internal/domain/level"
	"github.com/younwookim/tubejump/internal/infrastructure/config"
)

// Size and offset of the box a walker checks for ground ahead.
const (
	footSize = 2
	footGap  = 2
)

// EnemySystem runs the per-variant enemy AI.
type EnemySystem struct {
	config *config.GameConfig
}

// NewEnemySystem creates a new enemy system
func NewEnemySystem(cfg *config.GameConfig) *EnemySystem {
	return &EnemySystem{config: cfg}
}

// configKey maps an enemy kind to its entities.json entry.
func configKey(kind entity.Kind) string {
	switch kind {
	case entity.KindWalker:
		return "walker"
	case entity.KindTurret:
		return "turret"
	case entity.KindFlyer:
		return "flyer"
	default:
		return ""
	}
}

// Spawn instantiates an enemy from its spawn record.
func (s *EnemySystem) Spawn(sp level.EnemySpawn, env *Env) *entity.Enemy {
	ec := s.config.Entities.Enemies[configKey(sp.Type)]

	e := entity.NewEnemy(sp.Type, sp.X, sp.Y, ec.HP, ec.Speed, ec.DropChance)
	e.Phase = env.Rand.Float64() * math.Pi * 2
	if sp.Type == entity.KindTurret {
		e.Cooldown = ec.CooldownMin + randInt(env.Rand, ec.CooldownJitter)
	}
	return e
}

// Update advances one enemy by a tick. Removed enemies are skipped.
func (s *EnemySystem) Update(e *entity.Enemy, p *entity.Player, env *Env) {
	if e.Removed {
		return
	}
	if e.HitFlash > 0 {
		e.HitFlash--
	}
	e.Phase += 0.15

	switch e.Type {
	case entity.KindWalker:
		s.updateWalker(e, p, env)
	case entity.KindTurret:
		s.updateTurret(e, p, env)
	case entity.KindFlyer:
		s.updateFlyer(e, p, env)
	}
}

// updateWalker turns back at ledges and walks with full collision.
func (s *EnemySystem) updateWalker(e *entity.Enemy, p *entity.Player, env *Env) {
	phys := s.config.Physics

	e.FaceToward(p.X)

	aheadX := e.X - footGap
	if e.Facing > 0 {
		aheadX = e.X + e.W + footGap
	}
	foot := entity.Box{X: aheadX, Y: e.Y + e.H + 1, W: footSize, H: footSize}
	if !env.SolidAt(foot) {
		e.Facing = -e.Facing
	}

	e.VX = e.Speed * float64(e.Facing)
	e.VY = math.Min(e.VY+phys.World.Gravity*phys.Combat.EnemyGravityScale, phys.World.MaxFallSpeed)
	col := MoveWithCollisions(&e.Body, e.VX, e.VY, env.Solids)
	e.OnGround = col.Down
	if col.Down {
		e.VY = 0
	}

	env.ClampX(&e.Body)
}

// updateTurret aims at the player and fires when the cooldown runs out.
func (s *EnemySystem) updateTurret(e *entity.Enemy, p *entity.Player, env *Env) {
	ec := s.config.Entities.Enemies[configKey(entity.KindTurret)]
	bc := s.config.Entities.Bullets.Enemy

	e.FaceToward(p.X)

	fire := e.Cooldown <= 0
	e.Cooldown--
	if fire {
		bx := e.X
		if e.Facing > 0 {
			bx = e.X + e.W
		}
		env.Host.AddBullet(entity.NewBullet(bx, e.Y+e.H/2, e.Facing, bc.Speed, bc.Damage, bc.Lifetime, true))
		e.Cooldown = ec.ReloadMin + randInt(env.Rand, ec.ReloadJitter)
	}

	env.ClampX(&e.Body)
}

// updateFlyer homes in on the player, ignoring solids.
func (s *EnemySystem) updateFlyer(e *entity.Enemy, p *entity.Player, env *Env) {
	ec := s.config.Entities.Enemies[configKey(entity.KindFlyer)]

	pb, eb := p.Bounds(), e.Bounds()
	dx := pb.CenterX() - eb.CenterX()
	dy := pb.CenterY() - eb.CenterY()
	dist := math.Max(1, math.Hypot(dx, dy))

	e.VX = dx / dist * e.Speed
	e.VY = dy / dist * e.Speed * ec.VerticalScale
	e.X += e.VX
	e.Y += e.VY
	if dx < 0 {
		e.Facing = -1
	} else {
		e.Facing = 1
	}

	env.ClampX(&e.Body)
}
