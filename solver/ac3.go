package solver

import (
	"github.com/rs/zerolog/log"

	"github.com/bendobbins/crossgen/board"
)

// An arc is an ordered pair of crossing slots waiting to be revised.
type arc struct {
	x, y board.Slot
}

// revise makes x arc-consistent with y by dropping every word in x's domain
// with no supporting word in y's domain at the overlap indices. It reports
// whether anything was dropped. Slots that do not cross need no revision.
func (s *Solver) revise(x, y board.Slot) bool {
	ov, ok := s.model.Overlap(x, y)
	if !ok {
		return false
	}
	kept := make([]string, 0, len(s.domains[x]))
	for _, w := range s.domains[x] {
		supported := false
		for _, wy := range s.domains[y] {
			if w[ov.XIndex] == wy[ov.YIndex] {
				supported = true
				break
			}
		}
		if supported {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(s.domains[x]) {
		return false
	}
	s.domains[x] = kept
	return true
}

// ac3 runs worklist-driven arc consistency. A nil seed starts from both
// ordered arcs of every pair of distinct slots; requeueing alone does not
// cover the reverse arc when a revision only shrinks the forward side.
// Whenever a revision shrinks a domain, every other neighbor of the shrunk
// slot is requeued against it. Returns false as soon as any domain empties;
// the puzzle is unsatisfiable and search must not run.
func (s *Solver) ac3(arcs []arc) bool {
	if arcs == nil {
		slots := s.model.Slots()
		for i := 0; i < len(slots); i++ {
			for j := i + 1; j < len(slots); j++ {
				arcs = append(arcs, arc{slots[i], slots[j]}, arc{slots[j], slots[i]})
			}
		}
	}
	for len(arcs) > 0 {
		a := arcs[len(arcs)-1]
		arcs = arcs[:len(arcs)-1]
		if !s.revise(a.x, a.y) {
			continue
		}
		if len(s.domains[a.x]) == 0 {
			log.Debug().Stringer("slot", a.x).Msg("domain emptied during propagation")
			return false
		}
		for _, z := range s.model.Neighbors(a.x) {
			if z != a.y {
				arcs = append(arcs, arc{z, a.x})
			}
		}
	}
	return true
}
