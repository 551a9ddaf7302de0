package level

import (
	"math"

	"github.com/leonelquinteros/gotext"

	"github.com/younwookim/tubejump/internal/domain/entity"
)

// Validate snaps items and doors onto the surface beneath them and moves
// keys that cannot be reached from the start platform next to the start.
// It mutates d in place and returns one warning per moved key.
// Running it again on its own output changes nothing.
func Validate(d *Descriptor, m JumpModel) []string {
	for i := range d.Items {
		snapItem(d.Solids, &d.Items[i].Box)
	}
	for i := range d.Doors {
		if top, ok := topSolidAt(d.Solids, d.Doors[i].CenterX()); ok {
			d.Doors[i].Y = top.Y - d.Doors[i].H
		}
	}

	if len(d.Solids) == 0 {
		return nil
	}

	graph := BuildReachGraph(d.Solids, m)
	start := StartPlatform(d.Solids, d.PlayerStart, m)
	sp := d.Solids[start]

	var warnings []string
	for _, i := range d.Keys() {
		key := &d.Items[i]
		cx := key.CenterX()
		if Reachable(d.Solids, graph, start, cx) {
			continue
		}

		warnings = append(warnings,
			gotext.Get("Key at x=%d looked unreachable; moved next to start", int(math.Round(cx))))

		key.X = sp.CenterX() - key.W/2
		key.Y = sp.Y - key.H - itemLift
		snapItem(d.Solids, &key.Box)
	}

	return warnings
}

func snapItem(solids []entity.Box, b *entity.Box) {
	if top, ok := topSolidAt(solids, b.CenterX()); ok {
		b.Y = top.Y - b.H - itemLift
	}
}

// topSolidAt returns the highest solid whose span contains x.
func topSolidAt(solids []entity.Box, x float64) (entity.Box, bool) {
	var best entity.Box
	found := false
	for _, s := range solids {
		if !s.ContainsX(x) {
			continue
		}
		if !found || s.Y < best.Y {
			best = s
			found = true
		}
	}
	return best, found
}
