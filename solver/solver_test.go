package solver

import (
	"testing"

	"github.com/matryer/is"

	"github.com/bendobbins/crossgen/board"
)

// crossGrid has one across slot crossing one down slot at indices (1, 0).
var crossGrid = []string{
	"___",
	"#_#",
	"#_#",
}

func newTestSolver(t *testing.T, lines []string, words []string) *Solver {
	t.Helper()
	g, err := board.ParseGrid(lines)
	if err != nil {
		t.Fatal(err)
	}
	m, err := board.NewModel(g, words)
	if err != nil {
		t.Fatal(err)
	}
	return New(m)
}

func TestSolveSingleSlot(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t, []string{"_____"}, []string{"APPLE", "EXTRA"})

	a, err := s.Solve()
	is.NoErr(err)
	is.Equal(len(a), 1)
	is.True(s.assignmentComplete(a))

	word := a[board.Slot{Row: 0, Col: 0, Length: 5, Dir: board.Across}]
	is.True(word == "APPLE" || word == "EXTRA")
}

func TestSolveCross(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t, crossGrid, []string{"CAT", "ARC"})

	a, err := s.Solve()
	is.NoErr(err)
	is.Equal(a[board.Slot{Row: 0, Col: 0, Length: 3, Dir: board.Across}], "CAT")
	is.Equal(a[board.Slot{Row: 0, Col: 1, Length: 3, Dir: board.Down}], "ARC")
}

func TestSolveNoWordOfRequiredLength(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t, []string{"_____"}, []string{"CAT", "DOG"})

	a, err := s.Solve()
	is.True(err == ErrNoSolution)
	is.Equal(a, nil)
}

func TestSolveDuplicateWordForced(t *testing.T) {
	is := is.New(t)
	// Two disjoint slots whose domains both collapse to the same single
	// word; distinctness makes every full assignment inconsistent.
	s := newTestSolver(t, []string{
		"___",
		"###",
		"___",
	}, []string{"CAT", "HOUSE"})

	_, err := s.Solve()
	is.True(err == ErrNoSolution)
}

func TestSolveUnsatisfiableCrossing(t *testing.T) {
	is := is.New(t)
	// No across word's middle letter matches any down word's first letter,
	// so propagation empties a domain before search.
	s := newTestSolver(t, crossGrid, []string{"CAT", "DOG"})

	_, err := s.Solve()
	is.True(err == ErrNoSolution)
}

func TestSolveFullPuzzle(t *testing.T) {
	is := is.New(t)
	words := []string{"BUS", "ASH", "TEA", "BAT", "USE", "SHA", "CAT", "DOGMA"}
	s := newTestSolver(t, []string{
		"___",
		"___",
		"___",
	}, words)

	a, err := s.Solve()
	is.NoErr(err)
	is.Equal(len(a), 6)
	is.True(s.assignmentComplete(a))

	inList := make(map[string]bool)
	for _, w := range words {
		inList[w] = true
	}
	seen := make(map[string]bool)
	for _, w := range a {
		is.True(inList[w])
		is.True(!seen[w]) // no word may be used twice
		seen[w] = true
	}
}

func TestSolveShuffled(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t, []string{
		"___",
		"___",
		"___",
	}, []string{"BUS", "ASH", "TEA", "BAT", "USE", "SHA"})
	s.SetShuffle(true)

	a, err := s.Solve()
	is.NoErr(err)
	is.True(s.assignmentComplete(a))
}

func TestConsistentPartialAssignment(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t, crossGrid, []string{"CAT", "ARC", "ADD"})
	across := board.Slot{Row: 0, Col: 0, Length: 3, Dir: board.Across}
	down := board.Slot{Row: 0, Col: 1, Length: 3, Dir: board.Down}

	is.True(s.consistent(Assignment{across: "CAT"}))
	is.True(s.consistent(Assignment{across: "CAT", down: "ARC"}))
	// Overlap disagreement: down[0] must be across[1].
	is.True(!s.consistent(Assignment{across: "ADD", down: "ARC"}))
	// Wrong length.
	is.True(!s.consistent(Assignment{across: "CATS"}))
	// Reused word.
	is.True(!s.consistent(Assignment{across: "CAT", down: "CAT"}))
}

func TestBacktrackRestoresAssignmentOnFailure(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t, crossGrid, []string{"CAT", "DOG", "ARC"})
	s.enforceNodeConsistency()
	across := board.Slot{Row: 0, Col: 0, Length: 3, Dir: board.Across}
	down := board.Slot{Row: 0, Col: 1, Length: 3, Dir: board.Down}

	// Force an unwinnable branch: DOG's middle letter supports no down word.
	a := Assignment{across: "DOG"}
	is.True(!s.backtrack(a))
	is.Equal(len(a), 1) // failed search must not leak entries
	is.Equal(a[across], "DOG")
	_, assigned := a[down]
	is.True(!assigned)
}
