package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tubejump/internal/domain/entity"
)

func TestJumpModel_Figures(t *testing.T) {
	m := DefaultJumpModel()

	assert.InDelta(t, 40.0, m.AirTime(), 1e-9)
	assert.InDelta(t, 144.0, m.Range(), 1e-9)
	assert.InDelta(t, 116.0, m.Height(), 1e-9)
}

func TestJumpModel_RangeSlackBoundary(t *testing.T) {
	a := entity.Box{X: 0, Y: 200, W: 40, H: 40}
	b := entity.Box{X: 150, Y: 200, W: 40, H: 40}

	m := DefaultJumpModel()
	assert.True(t, m.CanJump(a, b), "150 apart is within 144 + 40")

	m.RangeSlack = 0
	assert.False(t, m.CanJump(a, b), "150 apart exceeds 144 without slack")
}

func TestJumpModel_RiseIsAsymmetric(t *testing.T) {
	low := entity.Box{X: 0, Y: 400, W: 80, H: 40}
	high := entity.Box{X: 40, Y: 200, W: 80, H: 40}
	m := DefaultJumpModel()

	assert.False(t, m.CanJump(low, high), "200 up is above the jump apex")
	assert.True(t, m.CanJump(high, low), "dropping down is always allowed")

	reachable := entity.Box{X: 40, Y: 400 - 120, W: 80, H: 40}
	assert.True(t, m.CanJump(low, reachable), "120 up is within 116 + 10")
}

func TestBuildReachGraph(t *testing.T) {
	solids := []entity.Box{
		{X: 0, Y: 200, W: 40, H: 40},
		{X: 150, Y: 200, W: 40, H: 40},
		{X: 1000, Y: 200, W: 40, H: 40},
	}

	graph := BuildReachGraph(solids, DefaultJumpModel())

	assert.Equal(t, []int{1}, graph[0])
	assert.Equal(t, []int{0}, graph[1])
	assert.Empty(t, graph[2])
}

func TestStartPlatform(t *testing.T) {
	solids := []entity.Box{
		{X: 0, Y: 0, W: 400, H: 40},
		{X: 200, Y: 300, W: 200, H: 40},
		{X: 0, Y: 240, W: 200, H: 40},
	}
	m := DefaultJumpModel()

	tests := []struct {
		name  string
		start Point
		want  int
	}{
		{"standing on third", Point{X: 40, Y: 198}, 2},
		{"within span tolerance", Point{X: 205, Y: 198}, 2},
		{"too far above", Point{X: 40, Y: 100}, 0},
		{"second platform", Point{X: 300, Y: 258}, 1},
		{"nothing below falls back to first", Point{X: 900, Y: 500}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartPlatform(solids, tt.start, m))
		})
	}
}

func TestReachable_FollowsChains(t *testing.T) {
	solids := []entity.Box{
		{X: 0, Y: 300, W: 40, H: 40},
		{X: 150, Y: 250, W: 40, H: 40},
		{X: 300, Y: 200, W: 40, H: 40},
		{X: 2000, Y: 200, W: 40, H: 40},
	}
	graph := BuildReachGraph(solids, DefaultJumpModel())

	assert.True(t, Reachable(solids, graph, 0, 320), "two hops away")
	assert.False(t, Reachable(solids, graph, 0, 2020))
	assert.False(t, Reachable(solids, graph, 9, 0), "invalid start")
}

// islandDescriptor has a start platform and a far island holding a key and a coin.
func islandDescriptor() *Descriptor {
	return &Descriptor{
		Solids: []entity.Box{
			{X: 0, Y: 200, W: 200, H: 40},
			{X: 2000, Y: 200, W: 80, H: 40},
		},
		Items: []ItemSpawn{
			{Box: entity.Box{X: 2030, Y: 174, W: 20, H: 20}, Type: entity.ItemKey},
			{Box: entity.Box{X: 2000, Y: 174, W: 20, H: 20}, Type: entity.ItemCoin},
		},
		PlayerStart: Point{X: 40, Y: 158},
		Rows:        6,
		Cols:        60,
		TileSize:    tile,
		Length:      2400,
	}
}

func TestValidate_RelocatesUnreachableKey(t *testing.T) {
	d := islandDescriptor()

	warnings := Validate(d, DefaultJumpModel())

	require.Len(t, warnings, 1)
	assert.Equal(t, "Key at x=2040 looked unreachable; moved next to start", warnings[0])

	key := d.Items[0]
	assert.Equal(t, 90.0, key.X, "centered on the start platform")
	assert.Equal(t, 174.0, key.Y)

	coin := d.Items[1]
	assert.Equal(t, 2000.0, coin.X, "non-key items are never moved")
}

func TestValidate_Idempotent(t *testing.T) {
	d := islandDescriptor()
	d.Items[0].Y = 10
	d.Doors = []DoorSpawn{{Box: entity.Box{X: 50, Y: 0, W: 40, H: 40}, NeedsKey: true}}

	first := Validate(d, DefaultJumpModel())
	require.NotEmpty(t, first)

	items := append([]ItemSpawn(nil), d.Items...)
	doors := append([]DoorSpawn(nil), d.Doors...)

	second := Validate(d, DefaultJumpModel())

	assert.Empty(t, second)
	assert.Equal(t, items, d.Items)
	assert.Equal(t, doors, d.Doors)
}

func TestValidate_SnapsItemsAndDoors(t *testing.T) {
	d := &Descriptor{
		Solids: []entity.Box{
			{X: 0, Y: 400, W: 400, H: 40},
			{X: 100, Y: 300, W: 100, H: 40},
		},
		Items: []ItemSpawn{
			{Box: entity.Box{X: 140, Y: 0, W: 20, H: 20}, Type: entity.ItemHealth},
			{Box: entity.Box{X: 300, Y: 0, W: 20, H: 20}, Type: entity.ItemCoin},
		},
		Doors: []DoorSpawn{
			{Box: entity.Box{X: 330, Y: 0, W: 40, H: 40}},
		},
		PlayerStart: Point{X: 20, Y: 358},
	}

	warnings := Validate(d, DefaultJumpModel())

	assert.Empty(t, warnings)
	assert.Equal(t, 300.0-26, d.Items[0].Y, "topmost solid wins")
	assert.Equal(t, 400.0-26, d.Items[1].Y)
	assert.Equal(t, 400.0-40, d.Doors[0].Y)
}

func TestValidate_ParsedLevelIsStable(t *testing.T) {
	grid := []string{
		"..........",
		"P...K....D",
		"##########",
	}

	d := Parse(grid, nil, tile)
	items := append([]ItemSpawn(nil), d.Items...)
	doors := append([]DoorSpawn(nil), d.Doors...)

	warnings := Validate(d, DefaultJumpModel())

	assert.Empty(t, warnings)
	assert.Equal(t, items, d.Items)
	assert.Equal(t, doors, d.Doors)
}

func TestValidate_NoSolids(t *testing.T) {
	d := &Descriptor{
		Items: []ItemSpawn{{Box: entity.Box{X: 0, Y: 0, W: 20, H: 20}, Type: entity.ItemKey}},
	}

	assert.Nil(t, Validate(d, DefaultJumpModel()))
	assert.Equal(t, 0.0, d.Items[0].Y)
}
