package match3

// MaxPendingSpecials caps how many specials a single resolution step can
// create.
const MaxPendingSpecials = 16

// PendingSpecial records a cell that will be upgraded instead of cleared
// during removal. It lives only between match detection and removal within
// one resolution step.
type PendingSpecial struct {
	Pos   Pos
	Color GemColor
	Kind  SpecialKind
}

// BuildSpecials decides which matched cells upgrade into specials this step.
// Rules, in priority order:
//
//  1. The first L/T/+ shape (a cell on both a >=3 horizontal and a >=3
//     vertical run of the same color) upgrades its intersection cell to a
//     star. At most one star per step.
//  2. Every remaining match of length >=4 whose center is not already
//     pending upgrades its center: >=6 supernova, =5 hypercube, =4 flame.
func BuildSpecials(matches []Match) []PendingSpecial {
	pending := make([]PendingSpecial, 0, 4)
	taken := make(map[Pos]bool)

	if p, color, ok := findShapeIntersection(matches); ok {
		pending = append(pending, PendingSpecial{Pos: p, Color: color, Kind: SpecialStar})
		taken[p] = true
	}

	for _, m := range matches {
		if m.Len() < 4 || len(pending) >= MaxPendingSpecials {
			continue
		}
		center := m.Center()
		if taken[center] {
			continue
		}
		var kind SpecialKind
		switch {
		case m.Len() >= 6:
			kind = SpecialSupernova
		case m.Len() == 5:
			kind = SpecialHypercube
		default:
			kind = SpecialFlame
		}
		pending = append(pending, PendingSpecial{Pos: center, Color: m.Color, Kind: kind})
		taken[center] = true
	}

	return pending
}

// findShapeIntersection returns the first cell shared by a horizontal and a
// vertical match of the same color, scanning matches in discovery order.
func findShapeIntersection(matches []Match) (Pos, GemColor, bool) {
	for _, h := range matches {
		if !h.Horizontal {
			continue
		}
		for _, v := range matches {
			if v.Horizontal || v.Color != h.Color {
				continue
			}
			for _, hp := range h.Positions {
				for _, vp := range v.Positions {
					if hp == vp {
						return hp, h.Color, true
					}
				}
			}
		}
	}
	return Pos{}, Empty, false
}
