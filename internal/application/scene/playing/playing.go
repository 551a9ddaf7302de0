// Package playing provides the main gameplay scene.
package playing

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/tubejump/internal/application/replay"
	"github.com/younwookim/tubejump/internal/application/scene"
	"github.com/younwookim/tubejump/internal/application/state"
	"github.com/younwookim/tubejump/internal/application/system"
	"github.com/younwookim/tubejump/internal/application/world"
)

// Keys reports keyboard state for the current tick.
type Keys interface {
	Held(k ebiten.Key) bool
	Pressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Held(k ebiten.Key) bool    { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) Pressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Key bindings
var (
	keysLeft  = []ebiten.Key{ebiten.KeyArrowLeft}
	keysRight = []ebiten.Key{ebiten.KeyArrowRight}
	keysJump  = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyZ}
	keysFire  = []ebiten.Key{ebiten.KeySpace, ebiten.KeyX}
	keysDebug = []ebiten.Key{ebiten.KeyD, ebiten.KeyF3}
	keysReset = []ebiten.Key{ebiten.KeyR}
)

// tickSeconds is the duration of one fixed tick.
const tickSeconds = float32(1.0 / 60.0)

const (
	keyPause = ebiten.KeyEscape
	keySave  = ebiten.KeyF5
	keyQuit  = ebiten.KeyQ
)

// Options configures the scene.
type Options struct {
	// RecordPath enables input recording; saved on exit and on F5.
	RecordPath string
	// Replayer feeds recorded input instead of the keyboard.
	Replayer *replay.Replayer
	// Keys overrides the keyboard, mainly for tests.
	Keys Keys
}

var _ scene.Scene = (*Playing)(nil)

// Playing is the main gameplay scene
type Playing struct {
	world   *world.World
	state   state.GameState
	keys    Keys
	screenW int
	screenH int

	feedback *feedback

	recorder   *replay.Recorder
	recordPath string
	replayer   *replay.Replayer
}

// New creates a new Playing scene around w.
func New(w *world.World, screenW, screenH int, opts Options) *Playing {
	p := &Playing{
		world:      w,
		state:      state.StatePlaying,
		keys:       opts.Keys,
		screenW:    screenW,
		screenH:    screenH,
		feedback:   newFeedback(w.Seed()),
		recordPath: opts.RecordPath,
		replayer:   opts.Replayer,
	}
	if p.keys == nil {
		p.keys = ebitenKeys{}
	}
	if p.replayer != nil {
		p.state = state.StateReplaying
		log.Printf("Replaying %d frames (seed: %d)", p.replayer.TotalFrames(), p.replayer.Seed())
	} else if p.recordPath != "" {
		p.recorder = replay.NewRecorder(w.Seed(), w.LevelName())
		log.Printf("Recording enabled: %s (seed: %d)", p.recordPath, w.Seed())
	}

	w.OnEvent = p.feedback.onEvent
	return p
}

// State returns the scene's current mode.
func (p *Playing) State() state.GameState {
	return p.state
}

// World returns the simulated world.
func (p *Playing) World() *world.World {
	return p.world
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	switch p.state {
	case state.StatePaused:
		if p.keys.Pressed(keyQuit) {
			return nil, scene.ErrQuit
		}
		if p.keys.Pressed(keyPause) {
			p.state = state.StatePlaying
		}
		return nil, nil

	case state.StateReplayDone:
		if p.keys.Pressed(keyQuit) || p.keys.Pressed(keyPause) {
			return nil, scene.ErrQuit
		}
		return nil, nil

	case state.StateReplaying:
		if p.replayer.Done() {
			p.state = state.StateReplayDone
			log.Printf("Replay finished at frame %d: level %d, score %d", p.world.Frame, p.world.Level, p.world.Score)
			if err := p.replayer.Check(replay.Result{Frame: p.world.Frame, Level: p.world.Level, Score: p.world.Score}); err != nil {
				log.Printf("Warning: %v", err)
			}
			return nil, nil
		}
		in, _ := p.replayer.GetInput()
		p.world.Step(in)

	case state.StatePlaying:
		if p.keys.Pressed(keyPause) {
			p.state = state.StatePaused
			return nil, nil
		}
		if p.keys.Pressed(keySave) {
			p.saveRecording()
		}

		in := p.readInput()
		if p.recorder != nil {
			p.recorder.RecordFrame(in)
		}
		p.world.Step(in)
	}

	p.feedback.update(tickSeconds)
	return nil, nil
}

// readInput maps the keyboard onto the simulation's input boundary.
func (p *Playing) readInput() system.Input {
	return system.Input{
		Left:  anyHeld(p.keys, keysLeft),
		Right: anyHeld(p.keys, keysRight),
		Jump:  anyPressed(p.keys, keysJump),
		Fire:  anyPressed(p.keys, keysFire),
		Debug: anyPressed(p.keys, keysDebug),
		Reset: anyPressed(p.keys, keysReset),
	}
}

func anyHeld(keys Keys, bound []ebiten.Key) bool {
	for _, k := range bound {
		if keys.Held(k) {
			return true
		}
	}
	return false
}

func anyPressed(keys Keys, bound []ebiten.Key) bool {
	for _, k := range bound {
		if keys.Pressed(k) {
			return true
		}
	}
	return false
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	p.recorder.SetResult(replay.Result{Frame: p.world.Frame, Level: p.world.Level, Score: p.world.Score})
	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}
}
