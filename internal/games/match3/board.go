// Package match3 implements the gem-matching engine behind the "Gems" plugin:
// an 8x8 board with special gems, chain reactions, and five game modes.
// The engine is a plain value with no global state; all randomness flows
// through one per-engine RNG so games are reproducible from a seed.
package match3

// GemColor identifies a gem color. Colors carry no semantics beyond equality.
type GemColor uint8

const (
	Empty GemColor = iota
	Ruby
	Emerald
	Sapphire
	Topaz
	Amethyst
	Citrine
	Pearl
)

// NumColors is the number of distinct gem colors (excluding Empty).
const NumColors = 7

// String returns the gem's display name.
func (c GemColor) String() string {
	switch c {
	case Ruby:
		return "Ruby"
	case Emerald:
		return "Emerald"
	case Sapphire:
		return "Sapphire"
	case Topaz:
		return "Topaz"
	case Amethyst:
		return "Amethyst"
	case Citrine:
		return "Citrine"
	case Pearl:
		return "Pearl"
	default:
		return "Empty"
	}
}

// SpecialKind tags a cell with a chain-reaction payload. Orthogonal to color;
// hypercubes are conceptually colorless but keep whatever color they carry.
type SpecialKind uint8

const (
	SpecialNone SpecialKind = iota
	SpecialFlame
	SpecialStar
	SpecialHypercube
	SpecialSupernova
)

// BoardSize is the fixed board dimension.
const BoardSize = 8

// Pos addresses a board cell. Row 0 is the top; gravity pulls toward
// increasing row index.
type Pos struct {
	Row, Col int
}

// Cell is one board cell: a gem color plus an optional special tag.
// Invariant: Special != SpecialNone implies Color != Empty.
type Cell struct {
	Color   GemColor
	Special SpecialKind

	// Spawning marks a cell that was upgraded to a special during the
	// current resolution step; it shields the fresh special from being
	// detonated by the step that created it.
	Spawning bool
}

// Board is the 8x8 cell matrix, indexed (row, column).
type Board [BoardSize][BoardSize]Cell

// InBounds reports whether p addresses a cell on the board.
func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// At returns the cell at p. Out-of-bounds reads yield an empty cell.
func (b *Board) At(p Pos) Cell {
	if !b.InBounds(p) {
		return Cell{}
	}
	return b[p.Row][p.Col]
}

// Set overwrites the cell at p. Out-of-bounds writes are ignored.
func (b *Board) Set(p Pos, c Cell) {
	if b.InBounds(p) {
		b[p.Row][p.Col] = c
	}
}

// ClearCell empties the cell at p, dropping any special tag.
func (b *Board) ClearCell(p Pos) {
	b.Set(p, Cell{})
}

// ColorAt returns just the color at p.
func (b *Board) ColorAt(p Pos) GemColor {
	return b.At(p).Color
}

// IsEmpty reports whether the cell at p holds no gem.
func (b *Board) IsEmpty(p Pos) bool {
	return b.At(p).Color == Empty
}

// CountColor returns how many cells hold the given color.
func (b *Board) CountColor(c GemColor) int {
	n := 0
	for r := 0; r < BoardSize; r++ {
		for col := 0; col < BoardSize; col++ {
			if b[r][col].Color == c {
				n++
			}
		}
	}
	return n
}

// EmptyCount returns how many cells hold no gem.
func (b *Board) EmptyCount() int {
	return b.CountColor(Empty)
}

// adjacent reports whether a and b are 4-adjacent.
func adjacent(a, b Pos) bool {
	dr := a.Row - b.Row
	dc := a.Col - b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}
