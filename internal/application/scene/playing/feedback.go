package playing

import (
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/tubejump/internal/application/system"
)

// feedback turns simulation events into screen shake and flashes.
// It never feeds back into the world, so replays stay deterministic.
type feedback struct {
	shake    *gween.Tween
	shakeAmp float64

	flash      *gween.Tween
	flashAlpha float64

	rng *rand.Rand
}

func newFeedback(seed int64) *feedback {
	return &feedback{rng: rand.New(rand.NewSource(seed))}
}

func (f *feedback) onEvent(ev system.Event) {
	switch ev {
	case system.EventPlayerHurt:
		f.startShake(6, 0.35)
	case system.EventEnemyKilled:
		f.startShake(3, 0.2)
	case system.EventLevelLoaded:
		f.flash = gween.New(1, 0, 0.5, ease.OutQuad)
		f.flashAlpha = 1
	}
}

// startShake keeps the stronger of the running and the new shake.
func (f *feedback) startShake(amp, seconds float32) {
	if f.shake != nil && f.shakeAmp > float64(amp) {
		return
	}
	f.shake = gween.New(amp, 0, seconds, ease.OutCubic)
	f.shakeAmp = float64(amp)
}

func (f *feedback) update(dt float32) {
	if f.shake != nil {
		v, done := f.shake.Update(dt)
		f.shakeAmp = float64(v)
		if done {
			f.shake, f.shakeAmp = nil, 0
		}
	}
	if f.flash != nil {
		v, done := f.flash.Update(dt)
		f.flashAlpha = float64(v)
		if done {
			f.flash, f.flashAlpha = nil, 0
		}
	}
}

// offset returns a random camera jitter for the current shake.
func (f *feedback) offset() (float64, float64) {
	if f.shakeAmp <= 0 {
		return 0, 0
	}
	return (f.rng.Float64()*2 - 1) * f.shakeAmp, (f.rng.Float64()*2 - 1) * f.shakeAmp
}
