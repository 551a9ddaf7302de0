package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/tubejump/internal/domain/entity"
)

func TestGuard_Valid(t *testing.T) {
	g := NewGuard(createTestGameConfig().Physics.Bounds)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"origin", 0, 0, true},
		{"far right inside", 9e6, 100, true},
		{"lower corner", -4000, 4000, true},
		{"NaN x", math.NaN(), 0, false},
		{"infinite y", 0, math.Inf(1), false},
		{"left of envelope", -4001, 0, false},
		{"below envelope", 0, 4001, false},
		{"above envelope", 0, -4001, false},
		{"right of envelope", 1e7 + 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Valid(&entity.Body{X: tt.x, Y: tt.y, W: 10, H: 10}))
		})
	}
}

func TestGuard_Sweep(t *testing.T) {
	g := NewGuard(createTestGameConfig().Physics.Bounds)

	fallen := entity.NewEnemy(entity.KindWalker, 100, 5000, 40, 1.2, 0)
	alive := entity.NewEnemy(entity.KindWalker, 100, 100, 40, 1.2, 0)
	broken := entity.NewBullet(math.NaN(), 0, 1, 9, 20, 120, false)
	stray := entity.NewBullet(0, -5000, 1, 6, 12, 120, true)
	spark := entity.NewParticle(0, math.Inf(-1), 0, 0, 2, 10, entity.TintSpark)
	lostDrop := entity.NewItem(entity.ItemPower, math.NaN(), 100)
	coin := entity.NewItem(entity.ItemCoin, 100, 100)

	a := &Actors{
		Enemies:      []*entity.Enemy{fallen, alive},
		Bullets:      []*entity.Bullet{broken},
		EnemyBullets: []*entity.Bullet{stray},
		Particles:    []*entity.Particle{spark},
		Items:        []*entity.Item{lostDrop, coin},
	}
	g.Sweep(a)

	assert.True(t, fallen.Removed)
	assert.False(t, alive.Removed)
	assert.True(t, broken.Removed)
	assert.True(t, stray.Removed)
	assert.True(t, spark.Removed)
	assert.True(t, lostDrop.Removed)
	assert.False(t, coin.Removed)

	a.Compact()
	assert.Equal(t, []*entity.Enemy{alive}, a.Enemies)
	assert.Empty(t, a.Bullets)
	assert.Empty(t, a.EnemyBullets)
	assert.Empty(t, a.Particles)
	assert.Equal(t, []*entity.Item{coin}, a.Items)
}

func TestActors_CompactKeepsDoorsAndTubes(t *testing.T) {
	door := &entity.Door{NeedsKey: true}
	tube := &entity.Tube{Target: 1}
	taken := entity.NewItem(entity.ItemCoin, 0, 0)
	taken.Removed = true
	kept := entity.NewItem(entity.ItemKey, 0, 0)

	a := &Actors{
		Items: []*entity.Item{taken, kept},
		Doors: []*entity.Door{door},
		Tubes: []*entity.Tube{tube},
	}
	a.Compact()

	assert.Equal(t, []*entity.Item{kept}, a.Items)
	assert.Len(t, a.Doors, 1)
	assert.Len(t, a.Tubes, 1)

	a.Reset()
	assert.Empty(t, a.Items)
	assert.Empty(t, a.Doors)
}
