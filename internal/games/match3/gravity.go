package match3

import "math/rand"

// ApplyGravity collapses empty cells downward, one column at a time from the
// bottom up, preserving the relative order of the gems above. Returns whether
// any cell moved. After it runs, the empties in every column form a
// contiguous block at the top.
func ApplyGravity(b *Board) bool {
	moved := false
	for c := 0; c < BoardSize; c++ {
		write := BoardSize - 1
		for r := BoardSize - 1; r >= 0; r-- {
			if b[r][c].Color == Empty {
				continue
			}
			if r != write {
				b[write][c] = b[r][c]
				b[r][c] = Cell{}
				moved = true
			}
			write--
		}
	}
	return moved
}

// Refill fills the empty cells at the top of each column with uniformly
// random colors. Returns the number of gems injected.
func Refill(b *Board, rng *rand.Rand) int {
	filled := 0
	for c := 0; c < BoardSize; c++ {
		for r := 0; r < BoardSize && b[r][c].Color == Empty; r++ {
			b[r][c] = Cell{Color: randomColor(rng)}
			filled++
		}
	}
	return filled
}

// randomColor draws one of the seven gem colors uniformly.
func randomColor(rng *rand.Rand) GemColor {
	return GemColor(rng.Intn(NumColors) + 1)
}
