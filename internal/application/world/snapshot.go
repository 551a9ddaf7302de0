package world

import (
	"github.com/younwookim/tubejump/internal/domain/entity"
)

// Snapshot returns the render state of every visible entity in draw order:
// platforms, items, doors, tubes, player, enemies, bullets, enemy bullets
// and particles. Hidden tubes are only included in debug mode.
func (w *World) Snapshot() []entity.Snapshot {
	out := make([]entity.Snapshot, 0, len(w.Solids)+len(w.Items)+len(w.Enemies)+len(w.Particles)+8)

	for _, s := range w.Solids {
		out = append(out, entity.Platform{Box: s}.Snapshot())
	}
	for _, it := range w.Items {
		if !it.Removed {
			out = append(out, it.Snapshot())
		}
	}
	for _, d := range w.Doors {
		out = append(out, d.Snapshot())
	}
	for _, t := range w.Tubes {
		if t.Hidden && !w.Debug {
			continue
		}
		out = append(out, t.Snapshot())
	}

	out = append(out, w.Player.Snapshot())

	for _, e := range w.Enemies {
		if !e.Removed {
			out = append(out, e.Snapshot())
		}
	}
	for _, b := range w.Bullets {
		out = append(out, b.Snapshot())
	}
	for _, b := range w.EnemyBullets {
		out = append(out, b.Snapshot())
	}
	for _, p := range w.Particles {
		out = append(out, p.Snapshot())
	}
	return out
}
