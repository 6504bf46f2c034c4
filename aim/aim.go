// Package aim reproduces Star Soldier's 16-way aim classification: given a
// shooter and a target position it picks the direction code the game would
// fire along, using only integer comparisons.
package aim

// Position is a point in screen coordinates.
type Position struct {
	X, Y int
}

// Code is one of 16 quantized directions, clockwise from north.
type Code uint8

const (
	CodeN Code = iota
	CodeNNE
	CodeNE
	CodeENE
	CodeE
	CodeESE
	CodeSE
	CodeSSE
	CodeS
	CodeSSW
	CodeSW
	CodeWSW
	CodeW
	CodeWNW
	CodeNW
	CodeNNW

	CodeCount = 16
)

var codeNames = [CodeCount]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

func (c Code) String() string {
	if c >= CodeCount {
		return "invalid"
	}
	return codeNames[c]
}

// Table maps a feature index to a direction code. Element order is the game's.
var Table = [24]Code{
	14, 2, 10, 6, 14, 2, 10, 6,
	15, 1, 9, 7, 13, 3, 11, 5,
	0, 0, 8, 8, 12, 4, 12, 4,
}

// Classify returns the direction code for firing from origin at target.
// origin == target is valid and yields Table[16].
func Classify(origin, target Position) Code {
	return Table[featureIndex(origin, target)]
}

// featureIndex packs quadrant (bits 0-1), dominant axis (bit 2) and the
// near-diagonal ratio test (bits 3-4). The result is always below 24: bits 3
// and 4 are never both set.
func featureIndex(origin, target Position) int {
	idx := 0

	if origin.X < target.X {
		idx |= 1 << 0
	}
	dx := abs(origin.X - target.X)

	if origin.Y < target.Y {
		idx |= 1 << 1
	}
	dy := abs(origin.Y - target.Y)

	if dy < dx {
		idx |= 1 << 2
	}

	// both operands are non-negative so Go's truncating division matches
	a := abs(dx-dy) / 4
	b := min(dx, dy) / 4

	if 3*a >= b {
		if a+a/4 >= b {
			idx |= 1 << 4
		} else {
			idx |= 1 << 3
		}
	}

	return idx
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
