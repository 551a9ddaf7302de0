package system

import "github.com/younwookim/tubejump/internal/domain/entity"

// Epsilon is the gap left between a body and the solid that stopped it.
const Epsilon = 1e-3

// Collision reports the outcome of a single-axis move.
type Collision struct {
	Moved   float64 // displacement actually applied
	Blocked bool    // a solid clipped the move
	Down    bool    // a downward move landed on a solid top
}

// MoveAxisX moves b horizontally by dx, stopping just short of the nearest
// solid in the way. VX is zeroed when the move was clipped.
func MoveAxisX(b *entity.Body, dx float64, solids []entity.Box) Collision {
	if dx == 0 {
		return Collision{}
	}

	move := dx
	for _, s := range solids {
		if b.Y+b.H <= s.Y || b.Y >= s.Y+s.H {
			continue
		}
		if dx > 0 {
			if b.X+b.W <= s.X && b.X+b.W+dx > s.X {
				if allowed := s.X - (b.X + b.W) - Epsilon; allowed < move {
					move = allowed
				}
			}
		} else {
			if b.X >= s.X+s.W && b.X+dx < s.X+s.W {
				if allowed := (s.X + s.W) - b.X + Epsilon; allowed > move {
					move = allowed
				}
			}
		}
	}

	b.X += move
	col := Collision{Moved: move}
	if move != dx {
		b.VX = 0
		col.Blocked = true
	}
	return col
}

// MoveAxisY resolves a vertical move. Down is set only when a downward move
// was clipped, which makes it the single source of grounded state.
func MoveAxisY(b *entity.Body, dy float64, solids []entity.Box) Collision {
	if dy == 0 {
		return Collision{}
	}

	move := dy
	down := false
	for _, s := range solids {
		if b.X+b.W <= s.X || b.X >= s.X+s.W {
			continue
		}
		if dy > 0 {
			if b.Y+b.H <= s.Y && b.Y+b.H+dy > s.Y {
				if allowed := s.Y - (b.Y + b.H) - Epsilon; allowed < move {
					move = allowed
					down = true
				}
			}
		} else {
			if b.Y >= s.Y+s.H && b.Y+dy < s.Y+s.H {
				if allowed := (s.Y + s.H) - b.Y + Epsilon; allowed > move {
					move = allowed
				}
			}
		}
	}

	b.Y += move
	col := Collision{Moved: move, Down: down}
	if move != dy {
		b.VY = 0
		col.Blocked = true
	}
	return col
}

// MoveWithCollisions resolves dx then dy and returns the vertical result.
func MoveWithCollisions(b *entity.Body, dx, dy float64, solids []entity.Box) Collision {
	MoveAxisX(b, dx, solids)
	return MoveAxisY(b, dy, solids)
}
