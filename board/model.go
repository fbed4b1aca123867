package board

// An Overlap records the intra-word character indices at which two crossing
// slots must agree: XIndex into the first slot's word, YIndex into the
// second's. Entries are stored in both key orders with the indices swapped,
// so Overlap(a, b) and Overlap(b, a) describe the same physical cell.
type Overlap struct {
	XIndex int
	YIndex int
}

type slotPair struct {
	x, y Slot
}

// A Model is the immutable structural skeleton of a puzzle: the grid, the
// candidate word list, the slots, and the overlap and neighbor relations
// between crossing slots. Everything is computed once at construction so the
// solver never recomputes geometry in its inner loops.
type Model struct {
	grid      Grid
	words     []string
	slots     []Slot
	overlaps  map[slotPair]Overlap
	neighbors map[Slot][]Slot
}

// NewModel computes the slots and overlap relations for a grid. The word
// list is carried along unmodified for the solver to draw domains from.
func NewModel(grid Grid, words []string) (*Model, error) {
	if grid.height == 0 || grid.width == 0 {
		return nil, ErrEmptyGrid
	}
	m := &Model{
		grid:  grid,
		words: append([]string(nil), words...),
		slots: findSlots(grid),
	}
	m.computeOverlaps()
	return m, nil
}

// findSlots scans the grid for maximal horizontal and vertical runs of open
// cells. Single open cells do not make a slot; a word needs at least two
// letters.
func findSlots(g Grid) []Slot {
	var slots []Slot
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if !g.open[r][c] {
				continue
			}
			if c == 0 || !g.open[r][c-1] {
				length := 1
				for cc := c + 1; cc < g.width && g.open[r][cc]; cc++ {
					length++
				}
				if length > 1 {
					slots = append(slots, Slot{Row: r, Col: c, Length: length, Dir: Across})
				}
			}
			if r == 0 || !g.open[r-1][c] {
				length := 1
				for rr := r + 1; rr < g.height && g.open[rr][c]; rr++ {
					length++
				}
				if length > 1 {
					slots = append(slots, Slot{Row: r, Col: c, Length: length, Dir: Down})
				}
			}
		}
	}
	return slots
}

func (m *Model) computeOverlaps() {
	m.overlaps = make(map[slotPair]Overlap)
	m.neighbors = make(map[Slot][]Slot)

	cells := make([]map[[2]int]int, len(m.slots))
	for i, slot := range m.slots {
		cells[i] = make(map[[2]int]int, slot.Length)
		for k := 0; k < slot.Length; k++ {
			r, c := slot.Cell(k)
			cells[i][[2]int{r, c}] = k
		}
	}

	for i := 0; i < len(m.slots); i++ {
		for j := i + 1; j < len(m.slots); j++ {
			x, y := m.slots[i], m.slots[j]
			for k := 0; k < x.Length; k++ {
				r, c := x.Cell(k)
				kj, ok := cells[j][[2]int{r, c}]
				if !ok {
					continue
				}
				m.overlaps[slotPair{x, y}] = Overlap{XIndex: k, YIndex: kj}
				m.overlaps[slotPair{y, x}] = Overlap{XIndex: kj, YIndex: k}
				m.neighbors[x] = append(m.neighbors[x], y)
				m.neighbors[y] = append(m.neighbors[y], x)
				// Straight segments cross in at most one cell.
				break
			}
		}
	}
}

// Slots returns every slot in the puzzle. Callers must not modify the
// returned slice.
func (m *Model) Slots() []Slot {
	return m.slots
}

// Words returns the candidate word list. Callers must not modify the
// returned slice.
func (m *Model) Words() []string {
	return m.words
}

// Overlap returns the agreement indices for x and y, and whether the two
// slots cross at all.
func (m *Model) Overlap(x, y Slot) (Overlap, bool) {
	ov, ok := m.overlaps[slotPair{x, y}]
	return ov, ok
}

// Neighbors returns every slot crossing s. Callers must not modify the
// returned slice.
func (m *Model) Neighbors(s Slot) []Slot {
	return m.neighbors[s]
}

// Height is the number of rows in the underlying grid.
func (m *Model) Height() int {
	return m.grid.height
}

// Width is the number of columns in the underlying grid.
func (m *Model) Width() int {
	return m.grid.width
}

// Open returns whether the underlying grid cell is fillable.
func (m *Model) Open(row, col int) bool {
	return m.grid.Open(row, col)
}
