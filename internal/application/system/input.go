package system

// Input is the per-tick input boundary. Left and Right are held states;
// the remaining fields are edge-triggered presses for this tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
	Fire  bool
	Debug bool
	Reset bool
}

// Direction returns -1, 0 or +1 from the held movement keys.
func (in Input) Direction() int {
	dir := 0
	if in.Right {
		dir++
	}
	if in.Left {
		dir--
	}
	return dir
}
