package entity

// ItemType identifies what a pickup does.
type ItemType int

const (
	ItemKey ItemType = iota
	ItemHealth
	ItemCoin
	ItemPower
)

// String returns the lower-case item name.
func (t ItemType) String() string {
	switch t {
	case ItemKey:
		return "key"
	case ItemHealth:
		return "health"
	case ItemCoin:
		return "coin"
	case ItemPower:
		return "power"
	default:
		return "unknown"
	}
}

// Item is a static pickup. Subtype is set for power items only.
type Item struct {
	Body

	Type    ItemType
	Subtype Powerup
	Phase   float64
}

// NewItem creates an item at the given position.
func NewItem(t ItemType, x, y float64) *Item {
	return &Item{Body: Body{X: x, Y: y, W: ItemSize, H: ItemSize}, Type: t}
}

// Kind implements Entity.
func (it *Item) Kind() Kind { return KindItem }

// Snapshot implements Entity.
func (it *Item) Snapshot() Snapshot {
	variant := it.Type.String()
	if it.Type == ItemPower {
		variant = it.Subtype.String()
	}
	return Snapshot{Kind: KindItem, Box: it.Bounds(), Phase: it.Phase, Fade: 1, Variant: variant}
}

// Door advances the player to the next level.
type Door struct {
	Body

	NeedsKey bool
	Phase    float64
}

// Kind implements Entity.
func (d *Door) Kind() Kind { return KindDoor }

// Snapshot implements Entity.
func (d *Door) Snapshot() Snapshot {
	variant := "open"
	if d.NeedsKey {
		variant = "locked"
	}
	return Snapshot{Kind: KindDoor, Box: d.Bounds(), Phase: d.Phase, Fade: 1, Variant: variant}
}

// Tube warps the player to Target, a level index.
type Tube struct {
	Body

	Target int
	Hidden bool
}

// Kind implements Entity.
func (t *Tube) Kind() Kind { return KindTube }

// Snapshot implements Entity.
func (t *Tube) Snapshot() Snapshot {
	variant := "visible"
	if t.Hidden {
		variant = "hidden"
	}
	return Snapshot{Kind: KindTube, Box: t.Bounds(), Fade: 1, Variant: variant}
}

// Platform is a static solid rectangle.
type Platform struct {
	Box
}

// Kind implements Entity.
func (p Platform) Kind() Kind { return KindPlatform }

// Bounds implements Entity.
func (p Platform) Bounds() Box { return p.Box }

// Snapshot implements Entity.
func (p Platform) Snapshot() Snapshot {
	return Snapshot{Kind: KindPlatform, Box: p.Box, Fade: 1}
}
