package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player   PlayerConfig           `json:"player"`
	Bullets  BulletsConfig          `json:"bullets"`
	Enemies  map[string]EnemyConfig `json:"enemies"`
	Powerups PowerupConfig          `json:"powerups"`
	Pickups  PickupConfig           `json:"pickups"`
	Effects  EffectsConfig          `json:"effects"`
}

type PlayerConfig struct {
	MaxHealth  int `json:"maxHealth"`
	HealAmount int `json:"healAmount"`
}

type BulletsConfig struct {
	Player     BulletConfig `json:"player"`
	Enemy      BulletConfig `json:"enemy"`
	CullMargin float64      `json:"cullMargin"`
}

type BulletConfig struct {
	Speed    float64 `json:"speed"`
	Damage   int     `json:"damage"`
	Lifetime int     `json:"lifetime"`
}

// EnemyConfig is keyed by "walker", "turret" or "flyer".
type EnemyConfig struct {
	HP            int     `json:"hp"`
	Speed         float64 `json:"speed"`
	DropChance    float64 `json:"dropChance"`
	VerticalScale float64 `json:"verticalScale,omitempty"`

	// Turret fire timing, in frames.
	CooldownMin    int `json:"cooldownMin,omitempty"`
	CooldownJitter int `json:"cooldownJitter,omitempty"`
	ReloadMin      int `json:"reloadMin,omitempty"`
	ReloadJitter   int `json:"reloadJitter,omitempty"`
}

type PowerupConfig struct {
	Duration              int     `json:"duration"`
	HasteRunMultiplier    float64 `json:"hasteRunMultiplier"`
	HasteJumpMultiplier   float64 `json:"hasteJumpMultiplier"`
	PowerDamageMultiplier float64 `json:"powerDamageMultiplier"`
}

type PickupConfig struct {
	CoinValue int `json:"coinValue"`
}

// EffectsConfig sizes the particle bursts.
type EffectsConfig struct {
	JumpParticles   int `json:"jumpParticles"`
	MuzzleParticles int `json:"muzzleParticles"`
	HitParticles    int `json:"hitParticles"`
	SparkParticles  int `json:"sparkParticles"`
	DustInterval    int `json:"dustInterval"`
}
