package level

import "github.com/younwookim/tubejump/internal/domain/entity"

// itemLift is the gap between a resting item and the surface below it.
const itemLift = 6

// Parse converts an ASCII grid into a descriptor.
// Rows may differ in length; the longest row sets the width and missing
// cells are empty. Tubes whose symbol has no entry in tubeTargets are skipped.
func Parse(grid []string, tubeTargets map[rune]int, tileSize float64) *Descriptor {
	cells := make([][]rune, len(grid))
	cols := 0
	for r, row := range grid {
		cells[r] = []rune(row)
		if len(cells[r]) > cols {
			cols = len(cells[r])
		}
	}

	p := &parser{
		cells: cells,
		tile:  tileSize,
		desc: &Descriptor{
			PlayerStart: DefaultStart,
			Rows:        len(grid),
			Cols:        cols,
			TileSize:    tileSize,
			Length:      float64(cols) * tileSize,
		},
	}

	p.mergeSolids()
	p.placeSymbols(tubeTargets)

	return p.desc
}

type parser struct {
	cells [][]rune
	tile  float64
	desc  *Descriptor
}

func (p *parser) at(r, c int) rune {
	if c >= len(p.cells[r]) {
		return SymbolEmpty
	}
	return p.cells[r][c]
}

// mergeSolids turns each horizontal run of solid cells into one rectangle.
func (p *parser) mergeSolids() {
	for r := range p.cells {
		c := 0
		for c < p.desc.Cols {
			if p.at(r, c) != SymbolSolid {
				c++
				continue
			}
			start := c
			for c < p.desc.Cols && p.at(r, c) == SymbolSolid {
				c++
			}
			p.desc.Solids = append(p.desc.Solids, entity.Box{
				X: float64(start) * p.tile,
				Y: float64(r) * p.tile,
				W: float64(c-start) * p.tile,
				H: p.tile,
			})
		}
	}
}

func (p *parser) placeSymbols(tubeTargets map[rune]int) {
	d := p.desc
	for r := range p.cells {
		for c, ch := range p.cells[r] {
			cx := float64(c)*p.tile + p.tile/2
			yTop := float64(r) * p.tile

			switch ch {
			case SymbolPlayer:
				d.PlayerStart = Point{
					X: cx - entity.PlayerWidth/2,
					Y: yTop + p.tile - entity.PlayerHeight,
				}
			case SymbolKey, SymbolHealth, SymbolCoin:
				top := p.dropToTop(cx, yTop)
				d.Items = append(d.Items, ItemSpawn{
					Box: entity.Box{
						X: cx - entity.ItemSize/2,
						Y: top - entity.ItemSize - itemLift,
						W: entity.ItemSize,
						H: entity.ItemSize,
					},
					Type: itemTypeFor(ch),
				})
			case SymbolDoor:
				top := p.dropToTop(cx, yTop)
				d.Doors = append(d.Doors, DoorSpawn{
					Box: entity.Box{
						X: cx - entity.DoorSize/2,
						Y: top - entity.DoorSize,
						W: entity.DoorSize,
						H: entity.DoorSize,
					},
					NeedsKey: true,
				})
			case SymbolTube, SymbolHiddenTube:
				target, ok := tubeTargets[ch]
				if !ok {
					continue
				}
				top := p.dropToTop(cx, yTop)
				d.Tubes = append(d.Tubes, TubeSpawn{
					Box: entity.Box{
						X: cx - entity.TubeWidth/2,
						Y: top - entity.TubeHeight,
						W: entity.TubeWidth,
						H: entity.TubeHeight,
					},
					Target: target,
					Hidden: ch == SymbolHiddenTube,
				})
			case SymbolWalker:
				top := p.dropToTop(cx, yTop)
				d.Enemies = append(d.Enemies, EnemySpawn{
					Type: entity.KindWalker,
					X:    cx - entity.WalkerWidth/2,
					Y:    top - entity.WalkerHeight,
				})
			case SymbolTurret:
				top := p.dropToTop(cx, yTop)
				d.Enemies = append(d.Enemies, EnemySpawn{
					Type: entity.KindTurret,
					X:    cx - entity.TurretWidth/2,
					Y:    top - entity.TurretHeight,
				})
			case SymbolFlyer:
				d.Enemies = append(d.Enemies, EnemySpawn{
					Type: entity.KindFlyer,
					X:    cx - entity.FlyerWidth/2,
					Y:    yTop + p.tile/2 - entity.FlyerHeight/2,
				})
			}
		}
	}
}

// dropToTop returns the top of the highest solid at or below row top y whose
// span, widened by a quarter tile, contains x. Falls back to the grid bottom.
func (p *parser) dropToTop(x, y float64) float64 {
	slack := p.tile * 0.25
	best := p.desc.Height()
	found := false
	for _, s := range p.desc.Solids {
		if x < s.X-slack || x > s.Right()+slack || s.Y < y {
			continue
		}
		if !found || s.Y < best {
			best = s.Y
			found = true
		}
	}
	return best
}

func itemTypeFor(ch rune) entity.ItemType {
	switch ch {
	case SymbolHealth:
		return entity.ItemHealth
	case SymbolCoin:
		return entity.ItemCoin
	default:
		return entity.ItemKey
	}
}
