package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tubejump/assets"
	"github.com/younwookim/tubejump/internal/application/system"
	"github.com/younwookim/tubejump/internal/domain/entity"
	"github.com/younwookim/tubejump/internal/infrastructure/config"
)

func loadTestConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.NewFSLoader(assets.Configs(), ".").LoadAll()
	require.NoError(t, err)
	return cfg
}

func flatLevel(name string, secret bool, grid ...string) config.LevelConfig {
	return config.LevelConfig{Name: name, Secret: secret, Grid: grid}
}

// testLevels is a three-level catalogue: a walkable start with a coin, a
// key and a locked door, a secret level, and a plain second level.
func testLevels() []config.LevelConfig {
	return []config.LevelConfig{
		flatLevel("Start", false,
			"....................",
			"....................",
			".P.C.K.....D........",
			"####################",
		),
		flatLevel("Hidden", true,
			"..........",
			".P........",
			"##########",
		),
		flatLevel("Second", false,
			"..........",
			".P........",
			"##########",
		),
	}
}

type eventLog []system.Event

func (l *eventLog) record(ev system.Event) { *l = append(*l, ev) }

func (l eventLog) count(ev system.Event) int {
	n := 0
	for _, e := range l {
		if e == ev {
			n++
		}
	}
	return n
}

func createTestWorld(t *testing.T, levels []config.LevelConfig, opts ...Option) (*World, *eventLog) {
	t.Helper()
	events := &eventLog{}
	opts = append([]Option{WithSeed(42), WithEventHandler(events.record)}, opts...)
	w, err := New(loadTestConfig(t), levels, opts...)
	require.NoError(t, err)
	return w, events
}

func TestNew_Errors(t *testing.T) {
	cfg := loadTestConfig(t)

	_, err := New(cfg, nil)
	assert.Error(t, err)

	_, err = New(&config.GameConfig{}, testLevels())
	assert.Error(t, err)
}

func TestNew_LoadsFirstLevel(t *testing.T) {
	w, events := createTestWorld(t, testLevels())

	assert.Equal(t, 0, w.Level)
	assert.Equal(t, "Start", w.LevelName())
	assert.Equal(t, 3, w.LevelCount())
	assert.Equal(t, int64(42), w.Seed())
	assert.Equal(t, 800.0, w.LevelLength)
	assert.Equal(t, 0.0, w.CameraX)
	assert.Empty(t, w.Warnings)

	require.Len(t, w.Solids, 1)
	assert.Equal(t, entity.Box{X: 0, Y: 120, W: 800, H: 40}, w.Solids[0])
	assert.Equal(t, 46.0, w.Player.X)
	assert.Equal(t, 78.0, w.Player.Y)
	assert.Equal(t, 100, w.Player.Health)
	assert.Len(t, w.Items, 2)
	require.Len(t, w.Doors, 1)
	assert.True(t, w.Doors[0].NeedsKey)
	assert.Equal(t, []system.Event{system.EventLevelLoaded}, []system.Event(*events))
}

func TestWorld_PlayerSettlesOnFloor(t *testing.T) {
	w, _ := createTestWorld(t, testLevels())

	for i := 0; i < 30; i++ {
		w.Step(system.Input{})
	}

	assert.True(t, w.Player.OnGround)
	assert.InDelta(t, 120-entity.PlayerHeight, w.Player.Y, 0.01)
	assert.Equal(t, 30, w.Frame)
}

func TestWorld_WalkCollectsAndOpensDoor(t *testing.T) {
	w, events := createTestWorld(t, testLevels())

	for i := 0; i < 300 && w.Level == 0; i++ {
		w.Step(system.Input{Right: true})
	}

	assert.Equal(t, 2, w.Level, "the door skips the secret level")
	assert.Equal(t, 1, w.Score, "score survives level loads")
	assert.Equal(t, 0, w.Player.Keys, "keys do not carry into the next level")
	assert.Equal(t, 2, events.count(system.EventPickup))
	assert.Equal(t, 1, events.count(system.EventDoor))
	assert.Equal(t, 2, events.count(system.EventLevelLoaded))
}

func TestWorld_LockedDoorNeedsKey(t *testing.T) {
	levels := []config.LevelConfig{
		flatLevel("NoKey", false,
			"....................",
			".P.....D............",
			"####################",
		),
		flatLevel("Next", false,
			"..........",
			".P........",
			"##########",
		),
	}
	w, _ := createTestWorld(t, levels)

	for i := 0; i < 200; i++ {
		w.Step(system.Input{Right: true})
	}

	assert.Equal(t, 0, w.Level)
	assert.Greater(t, w.Player.X, 400.0, "walked past the door")
}

func TestWorld_NextLevel(t *testing.T) {
	w, _ := createTestWorld(t, testLevels())

	w.NextLevel()
	assert.Equal(t, 2, w.Level)

	w.NextLevel()
	assert.Equal(t, 0, w.Level, "wraps to the start")
}

func TestWorld_WarpTo(t *testing.T) {
	w, _ := createTestWorld(t, testLevels())

	w.WarpTo(1)
	assert.Equal(t, 1, w.Level, "tubes may reach secret levels")

	w.WarpTo(7)
	assert.Equal(t, 1, w.Level, "out-of-range targets are ignored")

	w.WarpTo(-1)
	assert.Equal(t, 1, w.Level)
}

func TestWorld_HiddenTubeWarps(t *testing.T) {
	levels := testLevels()
	levels[0] = config.LevelConfig{
		Name:  "Tube",
		Tubes: map[string]int{"o": 1},
		Grid: []string{
			"....................",
			"....................",
			".P...o..............",
			"####################",
		},
	}
	w, events := createTestWorld(t, levels)
	require.Len(t, w.Tubes, 1)
	assert.True(t, w.Tubes[0].Hidden)

	for i := 0; i < 200 && w.Level == 0; i++ {
		w.Step(system.Input{Right: true})
	}

	assert.Equal(t, 1, w.Level)
	assert.Equal(t, 1, events.count(system.EventWarp))
}

func TestWorld_LethalContactRespawns(t *testing.T) {
	w, events := createTestWorld(t, testLevels())
	for i := 0; i < 5; i++ {
		w.Step(system.Input{Right: true})
	}
	w.Player.Health = 9
	w.Player.Keys = 1
	p := w.Player
	w.Enemies = append(w.Enemies, entity.NewEnemy(entity.KindWalker, p.X, p.Y, 40, 0, 0))

	w.Step(system.Input{})

	assert.NotSame(t, p, w.Player, "a new player is created")
	assert.Equal(t, 100, w.Player.Health)
	assert.Equal(t, 0, w.Player.Keys)
	assert.Equal(t, 46.0, w.Player.X)
	assert.Equal(t, 1, events.count(system.EventPlayerHurt))
	assert.Equal(t, 2, events.count(system.EventLevelLoaded))
	assert.Len(t, w.Enemies, 0, "the level's own roster is rebuilt")
}

func TestWorld_FallingOutRespawns(t *testing.T) {
	levels := []config.LevelConfig{
		flatLevel("Void", false,
			"..........",
			".P........",
			"..........",
		),
	}
	w, events := createTestWorld(t, levels)

	for i := 0; i < 400 && events.count(system.EventLevelLoaded) < 2; i++ {
		w.Step(system.Input{})
	}

	assert.Equal(t, 2, events.count(system.EventLevelLoaded))
	assert.Less(t, w.Player.Y, 100.0)
}

func TestWorld_ResetReloads(t *testing.T) {
	w, events := createTestWorld(t, testLevels())
	for i := 0; i < 20; i++ {
		w.Step(system.Input{Right: true})
	}
	require.Greater(t, w.Player.X, 46.0)

	w.Step(system.Input{Reset: true})

	assert.Equal(t, 46.0, w.Player.X)
	assert.Equal(t, 0, w.Level)
	assert.Equal(t, 2, events.count(system.EventLevelLoaded))
}

func TestWorld_FireSpawnsBullet(t *testing.T) {
	w, events := createTestWorld(t, testLevels())

	w.Step(system.Input{Fire: true})

	require.Len(t, w.Bullets, 1)
	assert.Empty(t, w.EnemyBullets)
	assert.NotEmpty(t, w.Particles)
	assert.Equal(t, 1, events.count(system.EventShoot))
}

func TestWorld_TurretBulletsAreHostile(t *testing.T) {
	w, _ := createTestWorld(t, testLevels())
	turret := entity.NewEnemy(entity.KindTurret, 600, 88, 50, 0, 0)
	w.Enemies = append(w.Enemies, turret)

	w.Step(system.Input{})

	require.Len(t, w.EnemyBullets, 1)
	assert.Empty(t, w.Bullets)
}

func TestWorld_Snapshot(t *testing.T) {
	levels := testLevels()
	levels[0].Tubes = map[string]int{"o": 2}
	levels[0].Grid[2] = ".P.C.K.....D...o...."
	w, _ := createTestWorld(t, levels)

	kinds := func() []entity.Kind {
		var out []entity.Kind
		for _, s := range w.Snapshot() {
			out = append(out, s.Kind)
		}
		return out
	}

	assert.Equal(t, []entity.Kind{
		entity.KindPlatform,
		entity.KindItem, entity.KindItem,
		entity.KindDoor,
		entity.KindPlayer,
	}, kinds())

	w.Step(system.Input{Debug: true})
	require.True(t, w.Debug)
	assert.Contains(t, kinds(), entity.KindTube, "debug reveals hidden tubes")

	w.Step(system.Input{Debug: true})
	assert.False(t, w.Debug)
}

func TestWorld_UnreachableKeyIsMoved(t *testing.T) {
	levels := []config.LevelConfig{
		flatLevel("Island", false,
			"..................................................",
			".P......................................K.........",
			"#####...................................#####.....",
		),
	}
	w, _ := createTestWorld(t, levels)

	require.Len(t, w.Warnings, 1)
	assert.Contains(t, w.Warnings[0], "x=1620")
	require.Len(t, w.Items, 1)
	assert.Equal(t, 90.0, w.Items[0].X)
	assert.Equal(t, 54.0, w.Items[0].Y)
}

func TestWorld_CameraFollowsAndClamps(t *testing.T) {
	levels := []config.LevelConfig{
		flatLevel("Long", false,
			"............................................................",
			".P..........................................................",
			"############################################################",
		),
	}
	w, _ := createTestWorld(t, levels, WithViewport(400))
	assert.Equal(t, 400.0, w.ViewportWidth())

	w.Player.X = 2300
	for i := 0; i < 200; i++ {
		w.Step(system.Input{})
		require.GreaterOrEqual(t, w.CameraX, 0.0)
		require.LessOrEqual(t, w.CameraX, 2000.0)
	}
	assert.InDelta(t, 2000.0, w.CameraX, 1, "eases to the right edge")
}

func TestWorld_SameSeedSameRun(t *testing.T) {
	cfg := loadTestConfig(t)
	levels, err := config.NewFSLoader(assets.Configs(), ".").LoadLevels()
	require.NoError(t, err)

	script := func(frame int) system.Input {
		return system.Input{
			Right: frame%200 < 150,
			Left:  frame%200 >= 170,
			Jump:  frame%37 == 0,
			Fire:  frame%23 == 0,
		}
	}
	run := func() *World {
		w, err := New(cfg, levels, WithSeed(99))
		require.NoError(t, err)
		for f := 0; f < 600; f++ {
			w.Step(script(f))
		}
		return w
	}

	a, b := run(), run()

	assert.Equal(t, a.Level, b.Level)
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.CameraX, b.CameraX)
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}
