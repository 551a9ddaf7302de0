package main

import (
	"github.com/leonelquinteros/gotext"

	"github.com/younwookim/tubejump/internal/domain/level"
	"github.com/younwookim/tubejump/internal/infrastructure/config"
)

// levelReport is the lint result for one catalogue entry.
type levelReport struct {
	Index    int
	Name     string
	Secret   bool
	Solids   int
	Enemies  int
	Keys     int
	Doors    int
	Warnings []string
}

// lint parses and validates every level the way the world does on load and
// adds catalogue checks the world cannot make on its own.
func lint(levels []config.LevelConfig, m level.JumpModel, tileSize float64) []levelReport {
	reports := make([]levelReport, 0, len(levels))
	for i, lc := range levels {
		d := level.Parse(lc.Grid, lc.TubeTargets(), tileSize)
		r := levelReport{
			Index:   i,
			Name:    lc.Name,
			Secret:  lc.Secret,
			Solids:  len(d.Solids),
			Enemies: len(d.Enemies),
			Keys:    len(d.Keys()),
			Doors:   len(d.Doors),
		}
		r.Warnings = level.Validate(d, m)

		if len(d.Solids) == 0 {
			r.Warnings = append(r.Warnings, gotext.Get("Level has no solid tiles"))
		}
		for _, t := range d.Tubes {
			if t.Target < 0 || t.Target >= len(levels) {
				r.Warnings = append(r.Warnings,
					gotext.Get("Tube at x=%d leads to missing level %d", int(t.X), t.Target))
			}
		}
		locked := 0
		for _, door := range d.Doors {
			if door.NeedsKey {
				locked++
			}
		}
		if locked > 0 && r.Keys == 0 {
			r.Warnings = append(r.Warnings, gotext.Get("Locked door without any key"))
		}
		if len(d.Doors) == 0 && len(d.Tubes) == 0 {
			r.Warnings = append(r.Warnings, gotext.Get("Level has no exit"))
		}

		reports = append(reports, r)
	}
	return reports
}

func warningCount(reports []levelReport) int {
	n := 0
	for _, r := range reports {
		n += len(r.Warnings)
	}
	return n
}
