package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/tubejump/internal/domain/entity"
)

func TestProjectileSystem_Update(t *testing.T) {
	wall := entity.Box{X: 110, Y: 100, W: 40, H: 100}

	tests := []struct {
		name        string
		x           float64
		dir         int
		lifetime    int
		wantRemoved bool
		wantSparks  bool
	}{
		{"flies freely", 300, 1, 120, false, false},
		{"stops at solid", 100, 1, 120, true, true},
		{"lifetime runs out", 300, 1, 1, true, false},
		{"culled right of view", 1035, 1, 120, true, false},
		{"kept inside margin", 1020, 1, 120, false, false},
		{"culled left of view", -75, -1, 120, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := NewProjectileSystem(createTestGameConfig())
			host := &recordingHost{}
			env := createTestEnv([]entity.Box{wall}, host)
			b := entity.NewBullet(tt.x, 150, tt.dir, 9, 20, tt.lifetime, false)

			sys.Update(b, env)

			assert.Equal(t, tt.x+float64(tt.dir)*9, b.X)
			assert.Equal(t, tt.wantRemoved, b.Removed)
			if tt.wantSparks {
				assert.Len(t, host.particles, 6)
			} else {
				assert.Empty(t, host.particles)
			}
		})
	}
}

func TestProjectileSystem_FollowsCamera(t *testing.T) {
	sys := NewProjectileSystem(createTestGameConfig())
	env := createTestEnv(nil, &recordingHost{})
	env.CameraX = 1000

	b := entity.NewBullet(1500, 150, 1, 9, 20, 120, false)
	sys.Update(b, env)
	assert.False(t, b.Removed)

	b = entity.NewBullet(900, 150, -1, 9, 20, 120, false)
	sys.Update(b, env)
	assert.True(t, b.Removed)
}

func TestProjectileSystem_SkipsRemoved(t *testing.T) {
	sys := NewProjectileSystem(createTestGameConfig())
	env := createTestEnv(nil, &recordingHost{})
	b := entity.NewBullet(300, 150, 1, 9, 20, 120, false)
	b.Removed = true

	sys.Update(b, env)

	assert.Equal(t, 300.0, b.X)
	assert.Equal(t, 120, b.Lifetime)
}
