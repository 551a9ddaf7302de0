package system

import (
	"github.com/younwookim/tubejump/internal/domain/entity"
	"github.com/younwookim/tubejump/internal/infrastructure/config"
)

// CombatSystem resolves every player-centred interaction of a tick:
// bullets against enemies, hostile bullets and contact against the player,
// pickups, doors and tubes.
type CombatSystem struct {
	config *config.GameConfig
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.GameConfig) *CombatSystem {
	return &CombatSystem{config: cfg}
}

// Resolve runs the interactions in order and stops at the first one that
// requests a level transition.
func (s *CombatSystem) Resolve(p *entity.Player, a *Actors, env *Env) Outcome {
	s.bulletsVsEnemies(a, env)

	if out := s.enemyBulletsVsPlayer(p, a, env); out != nil {
		return out
	}
	if out := s.contactDamage(p, a, env); out != nil {
		return out
	}

	s.collectItems(p, a, env)

	if out := s.enterDoors(p, a, env); out != nil {
		return out
	}
	return s.enterTubes(p, a, env)
}

func (s *CombatSystem) bulletsVsEnemies(a *Actors, env *Env) {
	for _, b := range a.Bullets {
		if b.Removed {
			continue
		}
		box := b.Bounds()
		for _, e := range a.Enemies {
			if !e.IsAlive() || !box.Overlaps(e.Bounds()) {
				continue
			}
			b.Removed = true
			s.hitEnemy(e, b.Damage, env)
		}
	}
}

// hitEnemy applies damage and rolls the powerup drop on a kill.
func (s *CombatSystem) hitEnemy(e *entity.Enemy, damage int, env *Env) {
	killed := e.TakeHit(damage)
	box := e.Bounds()
	hitBurst.emit(env, box.CenterX(), box.CenterY(), s.config.Entities.Effects.HitParticles)
	env.Host.Emit(EventEnemyHit)

	if !killed {
		return
	}
	env.Host.Emit(EventEnemyKilled)

	if e.DropChance <= 0 || env.Rand.Float64() >= e.DropChance {
		return
	}
	drop := entity.NewItem(entity.ItemPower, box.CenterX()-entity.ItemSize/2, box.Bottom()-entity.ItemSize)
	drop.Subtype = entity.PowerupHaste
	if env.Rand.Intn(2) == 1 {
		drop.Subtype = entity.PowerupPower
	}
	env.Host.AddItem(drop)
}

func (s *CombatSystem) enemyBulletsVsPlayer(p *entity.Player, a *Actors, env *Env) Outcome {
	box := p.Bounds()
	for _, b := range a.EnemyBullets {
		if b.Removed || !box.Overlaps(b.Bounds()) {
			continue
		}
		b.Removed = true
		if s.damagePlayer(p, b.Damage, s.config.Physics.Combat.BulletIFrames, env) {
			return Respawn{}
		}
	}
	return nil
}

func (s *CombatSystem) contactDamage(p *entity.Player, a *Actors, env *Env) Outcome {
	if p.IFrames > 0 {
		return nil
	}
	cc := s.config.Physics.Combat
	box := p.Bounds()
	for _, e := range a.Enemies {
		if !e.IsAlive() || !box.Overlaps(e.Bounds()) {
			continue
		}
		p.ContactTick = cc.ContactTickFrames
		if s.damagePlayer(p, cc.ContactDamage, cc.ContactIFrames, env) {
			return Respawn{}
		}
		return nil
	}
	return nil
}

// damagePlayer reports whether the hit emptied the player's health.
func (s *CombatSystem) damagePlayer(p *entity.Player, damage, iframes int, env *Env) bool {
	if p.IFrames > 0 {
		return false
	}
	dead := p.TakeDamage(damage, iframes)
	env.Host.Emit(EventPlayerHurt)
	return dead
}

func (s *CombatSystem) collectItems(p *entity.Player, a *Actors, env *Env) {
	box := p.Bounds()
	for _, it := range a.Items {
		if it.Removed || !box.Overlaps(it.Bounds()) {
			continue
		}
		it.Removed = true

		switch it.Type {
		case entity.ItemKey:
			p.Keys++
		case entity.ItemHealth:
			p.Heal(s.config.Entities.Player.HealAmount)
		case entity.ItemCoin:
			env.Host.AddScore(s.config.Entities.Pickups.CoinValue)
		case entity.ItemPower:
			p.ActivatePowerup(it.Subtype, s.config.Entities.Powerups.Duration)
			env.Host.Emit(EventPowerup)
			continue
		}
		env.Host.Emit(EventPickup)
	}
}

func (s *CombatSystem) enterDoors(p *entity.Player, a *Actors, env *Env) Outcome {
	box := p.Bounds()
	for _, d := range a.Doors {
		if !box.Overlaps(d.Bounds()) {
			continue
		}
		if d.NeedsKey {
			if p.Keys <= 0 {
				continue
			}
			p.Keys--
		}
		env.Host.Emit(EventDoor)
		return AdvanceLevel{}
	}
	return nil
}

func (s *CombatSystem) enterTubes(p *entity.Player, a *Actors, env *Env) Outcome {
	box := p.Bounds()
	for _, t := range a.Tubes {
		if !box.Overlaps(t.Bounds()) {
			continue
		}
		env.Host.Emit(EventWarp)
		return Warp{Target: t.Target}
	}
	return nil
}
