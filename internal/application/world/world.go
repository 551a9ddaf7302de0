// Package world owns the simulation context: the live entity collections of
// the current level, the player, the camera and the level lifecycle.
package world

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/younwookim/tubejump/internal/application/system"
	"github.com/younwookim/tubejump/internal/domain/entity"
	"github.com/younwookim/tubejump/internal/domain/level"
	"github.com/younwookim/tubejump/internal/infrastructure/config"
)

// World is the single mutable aggregate a tick operates on.
// It is rebuilt from scratch on every level load.
type World struct {
	config *config.GameConfig
	levels []config.LevelConfig
	rng    *rand.Rand
	seed   int64

	viewportW float64

	Level       int
	Score       int
	Warnings    []string
	CameraX     float64
	LevelLength float64
	Debug       bool
	Frame       int

	Solids []entity.Box
	Player *entity.Player
	system.Actors

	index      *system.SolidIndex
	env        system.Env
	playerSys  *system.PlayerSystem
	enemySys   *system.EnemySystem
	projectile *system.ProjectileSystem
	combat     *system.CombatSystem
	guard      system.Guard

	// OnEvent receives presentation feedback. May be nil.
	OnEvent func(system.Event)
}

// Option configures a World at construction.
type Option func(*World)

// WithSeed seeds the world's random source.
func WithSeed(seed int64) Option {
	return func(w *World) {
		w.seed = seed
		w.rng = rand.New(rand.NewSource(seed))
	}
}

// WithViewport sets the visible width used for camera clamping and bullet culling.
func WithViewport(width float64) Option {
	return func(w *World) {
		w.viewportW = width
	}
}

// WithEventHandler installs OnEvent before the first level loads.
func WithEventHandler(fn func(system.Event)) Option {
	return func(w *World) {
		w.OnEvent = fn
	}
}

// New creates a world over the level catalogue and loads the first level.
func New(cfg *config.GameConfig, levels []config.LevelConfig, opts ...Option) (*World, error) {
	if cfg == nil || cfg.Physics == nil || cfg.Entities == nil {
		return nil, fmt.Errorf("incomplete game config")
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels to play")
	}

	w := &World{
		config:     cfg,
		levels:     levels,
		viewportW:  float64(cfg.Physics.Display.ScreenWidth),
		playerSys:  system.NewPlayerSystem(cfg),
		enemySys:   system.NewEnemySystem(cfg),
		projectile: system.NewProjectileSystem(cfg),
		combat:     system.NewCombatSystem(cfg),
		guard:      system.NewGuard(cfg.Physics.Bounds),
	}
	WithSeed(time.Now().UnixNano())(w)
	for _, opt := range opts {
		opt(w)
	}

	w.LoadLevel(0, false)
	return w, nil
}

// Seed returns the seed of the world's random source.
func (w *World) Seed() int64 {
	return w.seed
}

// LevelCount returns the size of the catalogue.
func (w *World) LevelCount() int {
	return len(w.levels)
}

// LevelName returns the name of the current level.
func (w *World) LevelName() string {
	return w.levels[w.Level].Name
}

// ViewportWidth returns the visible width in pixels.
func (w *World) ViewportWidth() float64 {
	return w.viewportW
}

// LoadLevel rebuilds the world from the level at index. Out-of-range
// indices are logged and ignored.
func (w *World) LoadLevel(index int, respawn bool) {
	if index < 0 || index >= len(w.levels) {
		log.Printf("Ignoring load of level %d: catalogue has %d levels", index, len(w.levels))
		return
	}
	lc := w.levels[index]
	tile := w.config.Physics.World.TileSize

	w.Actors.Reset()
	w.Warnings = nil

	d := level.Parse(lc.Grid, lc.TubeTargets(), tile)
	w.Warnings = level.Validate(d, JumpModel(w.config.Physics))
	for _, msg := range w.Warnings {
		log.Printf("[Level Validation] %s: %s", lc.Name, msg)
	}

	w.Level = index
	w.Solids = d.Solids
	w.LevelLength = d.Length
	w.index = system.NewSolidIndex(d.Solids, d.Length, d.Height(), tile)

	env := w.tickEnv()
	for _, sp := range d.Enemies {
		w.Enemies = append(w.Enemies, w.enemySys.Spawn(sp, env))
	}
	for _, sp := range d.Items {
		it := entity.NewItem(sp.Type, sp.X, sp.Y)
		it.Subtype = sp.Subtype
		w.Items = append(w.Items, it)
	}
	for _, sp := range d.Doors {
		w.Doors = append(w.Doors, &entity.Door{Body: bodyOf(sp.Box), NeedsKey: sp.NeedsKey})
	}
	for _, sp := range d.Tubes {
		w.Tubes = append(w.Tubes, &entity.Tube{Body: bodyOf(sp.Box), Target: sp.Target, Hidden: sp.Hidden})
	}

	// Keys are rebuilt with the level, so the count always starts at zero.
	w.Player = w.playerSys.Spawn(d.PlayerStart.X, d.PlayerStart.Y)
	w.CameraX = w.cameraTarget()

	if respawn {
		log.Printf("Respawned in level %d (%s)", index, lc.Name)
	} else {
		log.Printf("Loaded level %d (%s): %d solids, %d enemies, %d items",
			index, lc.Name, len(d.Solids), len(d.Enemies), len(d.Items))
	}
	w.Emit(system.EventLevelLoaded)
}

// NextLevel advances to the next non-secret level, wrapping at the end.
func (w *World) NextLevel() {
	n := len(w.levels)
	next := w.Level
	for i := 0; i < n; i++ {
		next = (next + 1) % n
		if !w.levels[next].Secret {
			break
		}
	}
	w.LoadLevel(next, false)
}

// WarpTo loads the level at index, secret or not.
func (w *World) WarpTo(index int) {
	if index < 0 || index >= len(w.levels) {
		log.Printf("Ignoring warp to level %d: catalogue has %d levels", index, len(w.levels))
		return
	}
	w.LoadLevel(index, false)
}

// Step advances the simulation by one tick.
func (w *World) Step(in system.Input) {
	w.Frame++

	if in.Reset {
		w.LoadLevel(w.Level, true)
		return
	}
	if in.Debug {
		w.Debug = !w.Debug
	}

	w.followCamera()
	env := w.tickEnv()

	if in.Jump {
		w.playerSys.PressJump(w.Player)
	}
	if in.Fire {
		w.playerSys.Shoot(w.Player, env)
	}

	w.playerSys.Update(w.Player, in, env)
	if out := w.combat.Resolve(w.Player, &w.Actors, env); out != nil {
		w.apply(out)
		return
	}

	for _, e := range w.Enemies {
		w.enemySys.Update(e, w.Player, env)
	}
	for _, it := range w.Items {
		it.Phase += 0.08
	}
	for _, d := range w.Doors {
		d.Phase += 0.05
	}
	for _, b := range w.Bullets {
		w.projectile.Update(b, env)
	}
	for _, b := range w.EnemyBullets {
		w.projectile.Update(b, env)
	}
	for _, p := range w.Particles {
		p.Advance()
	}

	if !w.guard.Valid(&w.Player.Body) {
		log.Printf("Player left the world at (%.1f, %.1f); respawning", w.Player.X, w.Player.Y)
		w.LoadLevel(w.Level, true)
		return
	}
	w.guard.Sweep(&w.Actors)
	w.Compact()
}

func (w *World) apply(out system.Outcome) {
	switch o := out.(type) {
	case system.Respawn:
		w.LoadLevel(w.Level, true)
	case system.AdvanceLevel:
		w.NextLevel()
	case system.Warp:
		w.WarpTo(o.Target)
	}
}

func (w *World) tickEnv() *system.Env {
	w.env = system.Env{
		Solids:      w.Solids,
		Index:       w.index,
		LevelLength: w.LevelLength,
		CameraX:     w.CameraX,
		ViewportW:   w.viewportW,
		Frame:       w.Frame,
		Rand:        w.rng,
		Host:        w,
	}
	return &w.env
}

// cameraTarget centres the player, clamped to the level.
func (w *World) cameraTarget() float64 {
	maxX := math.Max(0, w.LevelLength-w.viewportW)
	return math.Max(0, math.Min(w.Player.X-w.viewportW/2, maxX))
}

func (w *World) followCamera() {
	w.CameraX += (w.cameraTarget() - w.CameraX) * w.config.Physics.World.CameraEase
}

// JumpModel derives the reachability model from the physics settings.
func JumpModel(p *config.PhysicsConfig) level.JumpModel {
	return level.JumpModel{
		Gravity:       p.World.Gravity,
		JumpStrength:  p.Jump.Strength,
		RunSpeed:      p.Movement.RunSpeed,
		RangeSlack:    p.Reach.RangeSlack,
		HeightMargin:  p.Reach.HeightMargin,
		RiseTolerance: p.Reach.RiseTolerance,
		StartSpan:     p.Reach.StartSpan,
		StartDrop:     p.Reach.StartDrop,
	}
}

func bodyOf(b entity.Box) entity.Body {
	return entity.Body{X: b.X, Y: b.Y, W: b.W, H: b.H}
}
