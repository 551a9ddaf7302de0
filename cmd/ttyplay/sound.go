package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/tubejump/internal/application/system"
)

const sampleRate = beep.SampleRate(44100)

type cue struct {
	freq     float64
	duration time.Duration
}

var cues = map[system.Event]cue{
	system.EventJump:        {660, 40 * time.Millisecond},
	system.EventShoot:       {990, 25 * time.Millisecond},
	system.EventEnemyHit:    {330, 30 * time.Millisecond},
	system.EventEnemyKilled: {220, 90 * time.Millisecond},
	system.EventPlayerHurt:  {110, 120 * time.Millisecond},
	system.EventPickup:      {1320, 60 * time.Millisecond},
	system.EventPowerup:     {1760, 120 * time.Millisecond},
	system.EventDoor:        {523, 150 * time.Millisecond},
	system.EventWarp:        {392, 200 * time.Millisecond},
}

// sound plays short sine cues for world events.
type sound struct {
	enabled bool
}

func newSound(enabled bool) *sound {
	s := &sound{}
	if !enabled {
		return s
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
		return s
	}
	s.enabled = true
	return s
}

func (s *sound) play(ev system.Event) {
	if !s.enabled {
		return
	}
	c, ok := cues[ev]
	if !ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, c.freq)
	if err != nil {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: beep.Take(sampleRate.N(c.duration), sine),
		Base:     2,
		Volume:   -2,
	})
}

func (s *sound) close() {
	if s.enabled {
		speaker.Close()
	}
}
