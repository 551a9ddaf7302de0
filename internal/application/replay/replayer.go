package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/tubejump/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.Input, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.Input{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.decode(), true
}

// Done reports whether every frame was played.
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Check compares got with the recorded result. Recordings without a result
// always pass.
func (r *Replayer) Check(got Result) error {
	want := r.data.Result
	if want == nil || *want == got {
		return nil
	}
	return fmt.Errorf("replay diverged: recorded level %d score %d at frame %d, got level %d score %d at frame %d",
		want.Level, want.Score, want.Frame, got.Level, got.Score, got.Frame)
}

// Stepper advances a simulation by one tick.
type Stepper interface {
	Step(in system.Input)
}

// Play feeds every remaining frame into s and returns how many were played.
func (r *Replayer) Play(s Stepper) int {
	played := 0
	for {
		in, ok := r.GetInput()
		if !ok {
			return played
		}
		s.Step(in)
		played++
	}
}
