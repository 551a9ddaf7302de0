package system

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/younwookim/tubejump/internal/domain/entity"
)

const (
	tagSolid = "solid"
	tagQuery = "query"
)

// cellPad widens every object registered in the grid; resolv maps the far
// edge of a box with X+W-1, which would drop sub-pixel overlaps.
const cellPad = 1

// SolidIndex answers overlap queries against the level solids through a
// resolv cell grid, confirming candidates with an exact box test.
type SolidIndex struct {
	space  *resolv.Space
	query  *resolv.Object
	boxes  map[*resolv.Object]entity.Box
	ox, oy float64 // space origin in world pixels
}

// NewSolidIndex builds an index covering width x height pixels.
func NewSolidIndex(solids []entity.Box, width, height, cellSize float64) *SolidIndex {
	cell := int(cellSize)
	if cell <= 0 {
		cell = 16
	}

	var ox, oy float64
	for _, s := range solids {
		ox = math.Min(ox, s.X)
		oy = math.Min(oy, s.Y)
	}
	w := max(int(math.Ceil(width-ox))+cellPad, cell)
	h := max(int(math.Ceil(height-oy))+cellPad, cell)

	ix := &SolidIndex{
		space: resolv.NewSpace(w, h, cell, cell),
		boxes: make(map[*resolv.Object]entity.Box, len(solids)),
		ox:    ox,
		oy:    oy,
	}
	for _, s := range solids {
		obj := resolv.NewObject(s.X-ox, s.Y-oy, s.W+cellPad, s.H+cellPad, tagSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, s.W, s.H))
		ix.space.Add(obj)
		ix.boxes[obj] = s
	}

	ix.query = resolv.NewObject(0, 0, 1, 1, tagQuery)
	ix.space.Add(ix.query)
	return ix
}

// Overlaps reports whether b strictly intersects any solid.
func (ix *SolidIndex) Overlaps(b entity.Box) bool {
	ix.query.X, ix.query.Y = b.X-ix.ox, b.Y-ix.oy
	ix.query.W, ix.query.H = b.W+cellPad, b.H+cellPad
	ix.query.Update()

	check := ix.query.Check(0, 0, tagSolid)
	if check == nil {
		return false
	}
	for _, obj := range check.ObjectsByTags(tagSolid) {
		if b.Overlaps(ix.boxes[obj]) {
			return true
		}
	}
	return false
}
