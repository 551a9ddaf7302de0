// Package tmxlevel imports Tiled maps as ASCII level grids.
package tmxlevel

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/younwookim/tubejump/internal/domain/level"
)

// Layer and object group names read from a map.
const (
	SolidLayer  = "solids"
	SpawnGroup  = "spawns"
	TargetField = "target"
)

// Level is an imported map in grid form.
type Level struct {
	Grid  []string
	Tubes map[string]int
}

// Load reads a TMX map from fsys. Every non-empty tile of the solids layer
// becomes a '#'; each object of the spawns group writes the first rune of
// its name into the cell holding its position. Tube objects carry their
// destination in an integer property named "target"; tubes without one are
// left out of the grid.
func Load(fsys fs.FS, path string) (*Level, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", path, levelMap.TileWidth, levelMap.TileHeight)
	}

	cells := make([][]rune, levelMap.Height)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(string(level.SymbolEmpty), levelMap.Width))
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				cells[y][x] = level.SymbolSolid
			}
		}
		break
	}

	lvl := &Level{Tubes: make(map[string]int)}
	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			symbol := []rune(o.Name)
			if len(symbol) == 0 {
				continue
			}
			col := int(o.X) / levelMap.TileWidth
			row := int(o.Y) / levelMap.TileHeight
			if row < 0 || row >= levelMap.Height || col < 0 || col >= levelMap.Width {
				continue
			}
			if symbol[0] == level.SymbolTube || symbol[0] == level.SymbolHiddenTube {
				target, ok := tubeTarget(o.Properties)
				if !ok {
					cells[row][col] = level.SymbolEmpty
					continue
				}
				lvl.Tubes[string(symbol[0])] = target
			}
			cells[row][col] = symbol[0]
		}
	}

	lvl.Grid = make([]string, len(cells))
	for y, row := range cells {
		lvl.Grid[y] = string(row)
	}
	return lvl, nil
}

// tubeTarget reads the target property. A missing or non-integer value
// leaves the tube without a destination.
func tubeTarget(props tiled.Properties) (int, bool) {
	for _, p := range props {
		if p.Name != TargetField {
			continue
		}
		target, err := strconv.Atoi(strings.TrimSpace(p.Value))
		if err != nil {
			return 0, false
		}
		return target, true
	}
	return 0, false
}
