package level

import "github.com/vovakirdan/opencells/internal/core"

// Tile is the kind of a placed cell. It is a closed sum type: the only
// implementations are Empty and Marked.
type Tile interface {
	isTile()

	// Color returns the fill color for the tile.
	Color(revealed bool) core.Color
}

// Empty is a safe tile. When ShowNeighborCount is set it displays how many
// of its neighbors are Marked.
type Empty struct {
	ShowNeighborCount bool
}

// Marked is a flagged tile. ShowAround is carried for display only.
type Marked struct {
	ShowAround bool
}

func (Empty) isTile()  {}
func (Marked) isTile() {}

// Color returns orange for revealed empty tiles and gray otherwise.
func (Empty) Color(revealed bool) core.Color {
	if !revealed {
		return core.ColorGray
	}
	return core.ColorOrange
}

// Color returns blue for revealed marked tiles and gray otherwise.
func (Marked) Color(revealed bool) core.Color {
	if !revealed {
		return core.ColorGray
	}
	return core.ColorBlue
}

// Kind identifies a tile variant without its payload.
type Kind int

const (
	KindEmpty Kind = iota
	KindMarked
)

// String returns the lower-case kind name used in level files.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindMarked:
		return "marked"
	default:
		return "unknown"
	}
}

// KindOf reports the variant of t.
func KindOf(t Tile) Kind {
	switch t.(type) {
	case Empty:
		return KindEmpty
	case Marked:
		return KindMarked
	default:
		panic("level: unknown tile type")
	}
}

// DefaultTile returns a fresh tile of kind k with its default display flags:
// empty tiles count their neighbors, marked tiles do not show around.
func DefaultTile(k Kind) Tile {
	switch k {
	case KindMarked:
		return Marked{ShowAround: false}
	default:
		return Empty{ShowNeighborCount: true}
	}
}
