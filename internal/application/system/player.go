package system

import (
	"math"

	"github.com/younwookim/tubejump/internal/domain/entity"
	"github.com/younwookim/tubejump/internal/infrastructure/config"
)

// Muzzle offsets relative to the player's box.
const (
	muzzleGap     = 2
	muzzleHeight  = 16
	shootFlashLen = 4
)

// PlayerSystem runs player movement, jumping and firing.
type PlayerSystem struct {
	config *config.GameConfig
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(cfg *config.GameConfig) *PlayerSystem {
	return &PlayerSystem{config: cfg}
}

// Spawn creates a fresh player at the level start.
func (s *PlayerSystem) Spawn(x, y float64) *entity.Player {
	return entity.NewPlayer(x, y, s.config.Entities.Player.MaxHealth)
}

// PressJump buffers a jump request.
func (s *PlayerSystem) PressJump(p *entity.Player) {
	p.JumpBuffer = s.config.Physics.Jump.JumpBufferFrames
}

// Update applies input, gravity and collision for one tick.
func (s *PlayerSystem) Update(p *entity.Player, in Input, env *Env) {
	phys := s.config.Physics
	runSpeed, jumpStrength := s.speeds(p)

	s.handleMovement(p, in.Direction(), runSpeed)

	p.VY = math.Min(p.VY+phys.World.Gravity, phys.World.MaxFallSpeed)

	s.handleJump(p, jumpStrength, env)

	col := MoveWithCollisions(&p.Body, p.VX, p.VY, env.Solids)
	p.OnGround = col.Down

	if p.OnGround {
		p.Coyote = phys.Jump.CoyoteFrames
		interval := s.config.Entities.Effects.DustInterval
		if interval > 0 && math.Abs(p.VX) > 0.2 && env.Frame%interval == 0 {
			dustBurst.emit(env, p.X+p.W/2, p.Y+p.H, 0)
		}
	}
	p.RunPhase += math.Abs(p.VX) * 0.1

	p.TickTimers()
	env.ClampX(&p.Body)
}

// speeds returns run speed and jump strength with any haste applied.
func (s *PlayerSystem) speeds(p *entity.Player) (run, jump float64) {
	run = s.config.Physics.Movement.RunSpeed
	jump = s.config.Physics.Jump.Strength
	if p.HasPowerup(entity.PowerupHaste) {
		run *= s.config.Entities.Powerups.HasteRunMultiplier
		jump *= s.config.Entities.Powerups.HasteJumpMultiplier
	}
	return run, jump
}

// handleMovement accelerates toward the input direction or applies friction.
func (s *PlayerSystem) handleMovement(p *entity.Player, dir int, runSpeed float64) {
	mv := s.config.Physics.Movement

	if dir == 0 {
		if p.OnGround {
			p.VX *= mv.FrictionGround
		} else {
			p.VX *= mv.FrictionAir
		}
		if math.Abs(p.VX) < mv.StopThreshold {
			p.VX = 0
		}
		return
	}

	p.Facing = dir
	accel := mv.RunAccel
	if !p.OnGround {
		accel *= mv.AirControl
	}
	p.VX = clamp(p.VX+float64(dir)*accel, -runSpeed, runSpeed)
}

// handleJump honours a buffered press while grounded or within coyote time.
func (s *PlayerSystem) handleJump(p *entity.Player, strength float64, env *Env) {
	if p.JumpBuffer > 0 {
		p.JumpBuffer--
	}
	if p.Coyote > 0 {
		p.Coyote--
	}

	if p.JumpBuffer > 0 && (p.OnGround || p.Coyote > 0) {
		p.VY = -strength
		p.OnGround = false
		p.Coyote = 0
		p.JumpBuffer = 0
		jumpBurst.emit(env, p.X+p.W/2, p.Y+p.H, s.config.Entities.Effects.JumpParticles)
		env.Host.Emit(EventJump)
	}
}

// Shoot fires a bullet from the player's leading edge.
func (s *PlayerSystem) Shoot(p *entity.Player, env *Env) {
	bc := s.config.Entities.Bullets.Player

	bx := p.X - entity.BulletWidth + muzzleGap
	if p.Facing > 0 {
		bx = p.X + p.W + muzzleGap
	}
	by := p.Y + muzzleHeight

	damage := bc.Damage
	if p.HasPowerup(entity.PowerupPower) {
		damage = int(math.Round(float64(damage) * s.config.Entities.Powerups.PowerDamageMultiplier))
	}

	env.Host.AddBullet(entity.NewBullet(bx, by, p.Facing, bc.Speed, damage, bc.Lifetime, false))
	muzzleBurst.withBias(float64(p.Facing)).emit(env, bx, by, s.config.Entities.Effects.MuzzleParticles)
	p.ShootFlash = shootFlashLen
	env.Host.Emit(EventShoot)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
