// Package replay records per-tick input with the world seed and plays it
// back into a fresh world.
package replay

import "github.com/younwookim/tubejump/internal/application/system"

// Version is written into every recording.
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	L   bool `json:"l,omitempty"`   // Left held
	R   bool `json:"r,omitempty"`   // Right held
	J   bool `json:"j,omitempty"`   // Jump pressed
	Fi  bool `json:"fi,omitempty"`  // Fire pressed
	Dbg bool `json:"dbg,omitempty"` // Debug toggle
	Rst bool `json:"rst,omitempty"` // Reset level
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
	Result    *Result      `json:"result,omitempty"`
}

// Result is the world state at the end of a recording. Playback compares
// against it to detect desyncs.
type Result struct {
	Frame int `json:"frame"`
	Level int `json:"level"`
	Score int `json:"score"`
}

func encodeFrame(frame int, in system.Input) FrameInput {
	return FrameInput{
		F:   frame,
		L:   in.Left,
		R:   in.Right,
		J:   in.Jump,
		Fi:  in.Fire,
		Dbg: in.Debug,
		Rst: in.Reset,
	}
}

func (fi FrameInput) decode() system.Input {
	return system.Input{
		Left:  fi.L,
		Right: fi.R,
		Jump:  fi.J,
		Fire:  fi.Fi,
		Debug: fi.Dbg,
		Reset: fi.Rst,
	}
}
