package system

import (
	"math/rand"

	"github.com/younwookim/tubejump/internal/domain/entity"
	"github.com/younwookim/tubejump/internal/infrastructure/config"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func createTestGameConfig() *config.GameConfig {
	return &config.GameConfig{
		Physics: &config.PhysicsConfig{
			World: config.WorldConfig{
				TileSize:     40,
				Gravity:      0.55,
				MaxFallSpeed: 16,
				CameraEase:   0.15,
			},
			Movement: config.MovementConfig{
				RunAccel:       0.6,
				RunSpeed:       3.6,
				AirControl:     0.5,
				FrictionGround: 0.82,
				FrictionAir:    0.98,
				StopThreshold:  0.05,
			},
			Jump: config.JumpConfig{
				Strength:         11,
				CoyoteFrames:     8,
				JumpBufferFrames: 8,
			},
			Combat: config.CombatConfig{
				ContactDamage:     10,
				ContactIFrames:    45,
				BulletIFrames:     30,
				ContactTickFrames: 10,
				EnemyGravityScale: 0.9,
			},
			Bounds: config.BoundsConfig{MinX: -4000, MaxX: 1e7, MinY: -4000, MaxY: 4000},
		},
		Entities: &config.EntitiesConfig{
			Player: config.PlayerConfig{MaxHealth: 100, HealAmount: 35},
			Bullets: config.BulletsConfig{
				Player:     config.BulletConfig{Speed: 9, Damage: 20, Lifetime: 120},
				Enemy:      config.BulletConfig{Speed: 6, Damage: 12, Lifetime: 120},
				CullMargin: 80,
			},
			Enemies: map[string]config.EnemyConfig{
				"walker": {HP: 40, Speed: 1.2, DropChance: 0.25},
				"turret": {HP: 50, DropChance: 0.5, CooldownMin: 60, CooldownJitter: 30, ReloadMin: 80, ReloadJitter: 60},
				"flyer":  {HP: 30, Speed: 1.8, DropChance: 0.2, VerticalScale: 0.8},
			},
			Powerups: config.PowerupConfig{
				Duration:              600,
				HasteRunMultiplier:    1.4,
				HasteJumpMultiplier:   1.15,
				PowerDamageMultiplier: 2.5,
			},
			Pickups: config.PickupConfig{CoinValue: 1},
			Effects: config.EffectsConfig{
				JumpParticles:   8,
				MuzzleParticles: 6,
				HitParticles:    6,
				SparkParticles:  6,
				DustInterval:    8,
			},
		},
	}
}

// recordingHost collects everything systems hand back to the world.
type recordingHost struct {
	particles []*entity.Particle
	bullets   []*entity.Bullet
	items     []*entity.Item
	score     int
	events    []Event
}

func (h *recordingHost) AddParticle(p *entity.Particle) { h.particles = append(h.particles, p) }
func (h *recordingHost) AddBullet(b *entity.Bullet)     { h.bullets = append(h.bullets, b) }
func (h *recordingHost) AddItem(it *entity.Item)        { h.items = append(h.items, it) }
func (h *recordingHost) AddScore(n int)                 { h.score += n }
func (h *recordingHost) Emit(ev Event)                  { h.events = append(h.events, ev) }

// floor is a wide ground slab whose top sits at y=200.
var floor = entity.Box{X: 0, Y: 200, W: 2000, H: 40}

func createTestEnv(solids []entity.Box, host *recordingHost) *Env {
	return &Env{
		Solids:      solids,
		Index:       NewSolidIndex(solids, 2000, 800, 40),
		LevelLength: 2000,
		ViewportW:   960,
		Rand:        testRNG(),
		Host:        host,
	}
}

// restingPlayer returns a player standing on floor at x.
func restingPlayer(x float64) *entity.Player {
	p := entity.NewPlayer(x, 0, 100)
	p.Y = floor.Y - p.H - Epsilon
	p.OnGround = true
	return p
}
