package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display  DisplayConfig  `json:"display"`
	World    WorldConfig    `json:"world"`
	Movement MovementConfig `json:"movement"`
	Jump     JumpConfig     `json:"jump"`
	Combat   CombatConfig   `json:"combat"`
	Bounds   BoundsConfig   `json:"bounds"`
	Reach    ReachConfig    `json:"reach"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// WorldConfig holds the per-tick constants shared by every body.
type WorldConfig struct {
	TileSize     float64 `json:"tileSize"`
	Gravity      float64 `json:"gravity"`
	MaxFallSpeed float64 `json:"maxFallSpeed"`
	CameraEase   float64 `json:"cameraEase"`
}

type MovementConfig struct {
	RunAccel       float64 `json:"runAccel"`
	RunSpeed       float64 `json:"runSpeed"`
	AirControl     float64 `json:"airControl"`
	FrictionGround float64 `json:"frictionGround"`
	FrictionAir    float64 `json:"frictionAir"`
	StopThreshold  float64 `json:"stopThreshold"`
}

type JumpConfig struct {
	Strength         float64 `json:"strength"`
	CoyoteFrames     int     `json:"coyoteFrames"`
	JumpBufferFrames int     `json:"jumpBufferFrames"`
}

type CombatConfig struct {
	ContactDamage     int     `json:"contactDamage"`
	ContactIFrames    int     `json:"contactIframes"`
	BulletIFrames     int     `json:"bulletIframes"`
	ContactTickFrames int     `json:"contactTickFrames"`
	EnemyGravityScale float64 `json:"enemyGravityScale"`
}

// BoundsConfig is the box every live entity must stay inside.
type BoundsConfig struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinY float64 `json:"minY"`
	MaxY float64 `json:"maxY"`
}

// ReachConfig tunes the level reachability check.
type ReachConfig struct {
	RangeSlack    float64 `json:"rangeSlack"`
	HeightMargin  float64 `json:"heightMargin"`
	RiseTolerance float64 `json:"riseTolerance"`
	StartSpan     float64 `json:"startSpan"`
	StartDrop     float64 `json:"startDrop"`
}
