// Package level turns ASCII grids into level descriptors and checks them for
// playability before the world instantiates them.
package level

import "github.com/younwookim/tubejump/internal/domain/entity"

// Grid symbols.
const (
	SymbolEmpty      = '.'
	SymbolSolid      = '#'
	SymbolPlayer     = 'P'
	SymbolKey        = 'K'
	SymbolHealth     = 'H'
	SymbolCoin       = 'C'
	SymbolDoor       = 'D'
	SymbolTube       = 'O'
	SymbolHiddenTube = 'o'
	SymbolWalker     = 'W'
	SymbolTurret     = 'T'
	SymbolFlyer      = 'F'
)

// DefaultStart is used when a grid has no player symbol.
var DefaultStart = Point{X: 40, Y: 40}

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// ItemSpawn places a pickup.
type ItemSpawn struct {
	entity.Box
	Type    entity.ItemType
	Subtype entity.Powerup
}

// EnemySpawn places an enemy by its top-left corner.
type EnemySpawn struct {
	Type entity.Kind
	X, Y float64
}

// DoorSpawn places a door.
type DoorSpawn struct {
	entity.Box
	NeedsKey bool
}

// TubeSpawn places a warp tube leading to level Target.
type TubeSpawn struct {
	entity.Box
	Target int
	Hidden bool
}

// Descriptor is the static description of a parsed level.
type Descriptor struct {
	Solids      []entity.Box
	Items       []ItemSpawn
	Enemies     []EnemySpawn
	Doors       []DoorSpawn
	Tubes       []TubeSpawn
	PlayerStart Point

	Rows     int
	Cols     int
	TileSize float64
	Length   float64 // level width in pixels
}

// Height returns the level height in pixels.
func (d *Descriptor) Height() float64 {
	return float64(d.Rows) * d.TileSize
}

// Keys returns the indices of key items.
func (d *Descriptor) Keys() []int {
	var idx []int
	for i, it := range d.Items {
		if it.Type == entity.ItemKey {
			idx = append(idx, i)
		}
	}
	return idx
}
