package solver

import (
	"sort"

	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/bendobbins/crossgen/board"
)

// selectUnassignedVariable picks the next slot to fill: fewest remaining
// candidates first (minimum remaining values), ties broken by most neighbors
// (highest degree), then by grid position so runs are reproducible.
func (s *Solver) selectUnassignedVariable(a Assignment) board.Slot {
	unassigned := lo.Filter(s.model.Slots(), func(slot board.Slot, _ int) bool {
		_, assigned := a[slot]
		return !assigned
	})
	best := unassigned[0]
	for _, slot := range unassigned[1:] {
		if s.preferred(slot, best) {
			best = slot
		}
	}
	return best
}

func (s *Solver) preferred(a, b board.Slot) bool {
	if da, db := len(s.domains[a]), len(s.domains[b]); da != db {
		return da < db
	}
	if na, nb := len(s.model.Neighbors(a)), len(s.model.Neighbors(b)); na != nb {
		return na > nb
	}
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	if a.Col != b.Col {
		return a.Col < b.Col
	}
	return a.Dir < b.Dir
}

// orderDomainValues returns the slot's candidates least-constraining first:
// ascending by how many words each would eliminate from the domains of the
// slot's unassigned neighbors. Ties come out lexicographic, or random when
// shuffle mode is on.
func (s *Solver) orderDomainValues(slot board.Slot, a Assignment) []string {
	words := append([]string(nil), s.domains[slot]...)
	if s.shuffle {
		frand.Shuffle(len(words), func(i, j int) {
			words[i], words[j] = words[j], words[i]
		})
	} else {
		sort.Strings(words)
	}

	type crossing struct {
		ov     board.Overlap
		domain []string
	}
	var crossings []crossing
	for _, n := range s.model.Neighbors(slot) {
		if _, assigned := a[n]; assigned {
			continue
		}
		ov, _ := s.model.Overlap(slot, n)
		crossings = append(crossings, crossing{ov: ov, domain: s.domains[n]})
	}

	ruledOut := make(map[string]int, len(words))
	for _, w := range words {
		total := 0
		for _, c := range crossings {
			for _, nw := range c.domain {
				if w[c.ov.XIndex] != nw[c.ov.YIndex] {
					total++
				}
			}
		}
		ruledOut[w] = total
	}
	sort.SliceStable(words, func(i, j int) bool {
		return ruledOut[words[i]] < ruledOut[words[j]]
	})
	return words
}
