package level

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/younwookim/tubejump/internal/domain/entity"
)

// JumpModel holds the movement figures the reachability check assumes.
type JumpModel struct {
	Gravity      float64
	JumpStrength float64
	RunSpeed     float64

	RangeSlack    float64 // extra horizontal reach granted to every edge
	HeightMargin  float64 // added to the ballistic apex height
	RiseTolerance float64 // extra rise accepted on top of the apex height

	StartSpan float64 // horizontal tolerance when locating the start platform
	StartDrop float64 // how far below the start a platform may be
}

// DefaultJumpModel matches the stock physics.
func DefaultJumpModel() JumpModel {
	return JumpModel{
		Gravity:       0.55,
		JumpStrength:  11,
		RunSpeed:      3.6,
		RangeSlack:    40,
		HeightMargin:  6,
		RiseTolerance: 10,
		StartSpan:     10,
		StartDrop:     100,
	}
}

// AirTime is the number of ticks a full jump stays airborne.
func (m JumpModel) AirTime() float64 {
	return 2 * m.JumpStrength / m.Gravity
}

// Range is the horizontal distance covered at full run speed during AirTime.
func (m JumpModel) Range() float64 {
	return m.RunSpeed * m.AirTime()
}

// Height is the apex height of a full jump plus the margin.
func (m JumpModel) Height() float64 {
	return m.JumpStrength*m.JumpStrength/(2*m.Gravity) + m.HeightMargin
}

// CanJump reports whether a jump from platform a can land on platform b.
// Only climbing is limited; dropping down any distance is allowed.
func (m JumpModel) CanJump(a, b entity.Box) bool {
	dx := math.Abs(b.CenterX() - a.CenterX())
	rise := a.Y - b.Y
	return dx <= m.Range()+m.RangeSlack && rise <= m.Height()+m.RiseTolerance
}

// BuildReachGraph returns adjacency lists of platform indices.
func BuildReachGraph(solids []entity.Box, m JumpModel) [][]int {
	graph := make([][]int, len(solids))
	for i, a := range solids {
		for j, b := range solids {
			if i == j {
				continue
			}
			if m.CanJump(a, b) {
				graph[i] = append(graph[i], j)
			}
		}
	}
	return graph
}

// StartPlatform returns the index of the first platform under the start
// position, or 0 when none qualifies.
func StartPlatform(solids []entity.Box, start Point, m JumpModel) int {
	for i, s := range solids {
		if start.X < s.X-m.StartSpan || start.X > s.Right()+m.StartSpan {
			continue
		}
		if start.Y <= s.Y && start.Y >= s.Y-m.StartDrop {
			return i
		}
	}
	return 0
}

// Reachable runs a breadth-first search from platform start and reports
// whether any visited platform spans x.
func Reachable(solids []entity.Box, graph [][]int, start int, x float64) bool {
	if start < 0 || start >= len(solids) {
		return false
	}

	visited := mapset.New[int]()
	visited.Put(start)
	queue := []int{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if solids[cur].ContainsX(x) {
			return true
		}
		for _, next := range graph[cur] {
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return false
}
