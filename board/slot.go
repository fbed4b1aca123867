package board

import "fmt"

// Direction is the orientation of a slot on the grid.
type Direction uint8

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// A Slot is a maximal run of two or more open cells that must be filled with
// a single word. Slots are small value types so they can be used directly as
// map keys; two slots are the same slot iff their row, column, length and
// direction all match.
type Slot struct {
	Row    int
	Col    int
	Length int
	Dir    Direction
}

func (s Slot) String() string {
	return fmt.Sprintf("%d,%d %s (len %d)", s.Row, s.Col, s.Dir, s.Length)
}

// Cell returns the grid coordinates of the k-th letter of the slot.
func (s Slot) Cell(k int) (row, col int) {
	if s.Dir == Down {
		return s.Row + k, s.Col
	}
	return s.Row, s.Col + k
}
