// Package solver fills a crossword grid: it treats each slot as a CSP
// variable whose domain is the word list, prunes the domains with node and
// arc consistency, and then runs backtracking search with MRV/degree variable
// ordering and least-constraining-value ordering.
package solver

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/bendobbins/crossgen/board"
)

// ErrNoSolution is returned when propagation empties a domain or the search
// exhausts every branch. The two cases are not distinguished; either way
// there is no usable fill.
var ErrNoSolution = errors.New("no solution")

// An Assignment maps each slot to the word filling it.
type Assignment map[board.Slot]string

// A Solver owns the mutable solve state: the per-slot candidate domains,
// which only ever shrink. The structural model it reads from is immutable.
// A Solver is good for one Solve call.
type Solver struct {
	model   *board.Model
	domains map[board.Slot][]string
	shuffle bool
}

// New initializes every slot's domain to a copy of the model's word list.
func New(model *board.Model) *Solver {
	s := &Solver{
		model:   model,
		domains: make(map[board.Slot][]string, len(model.Slots())),
	}
	for _, slot := range model.Slots() {
		s.domains[slot] = append([]string(nil), model.Words()...)
	}
	return s
}

// SetShuffle randomizes heuristic tie-breaks so repeated solves can produce
// different (equally valid) fills. Off by default; the default ordering is
// deterministic.
func (s *Solver) SetShuffle(shuffle bool) {
	s.shuffle = shuffle
}

// Solve enforces node consistency, propagates arc consistency, and then runs
// backtracking search. The returned assignment is complete and consistent;
// ErrNoSolution is the only failure.
func (s *Solver) Solve() (Assignment, error) {
	s.enforceNodeConsistency()
	for _, slot := range s.model.Slots() {
		if len(s.domains[slot]) == 0 {
			log.Debug().Stringer("slot", slot).Msg("no words of the required length")
			return nil, ErrNoSolution
		}
	}
	if !s.ac3(nil) {
		return nil, ErrNoSolution
	}
	log.Debug().Int("slots", len(s.model.Slots())).Msg("domains consistent, searching")

	a := make(Assignment, len(s.model.Slots()))
	if !s.backtrack(a) {
		return nil, ErrNoSolution
	}
	return a, nil
}

// backtrack extends the assignment one slot at a time. Every tentative
// choice that does not lead to a complete assignment is undone before the
// next candidate is tried, so on a false return the assignment is exactly as
// the caller passed it in.
func (s *Solver) backtrack(a Assignment) bool {
	if s.assignmentComplete(a) {
		return true
	}
	slot := s.selectUnassignedVariable(a)
	for _, word := range s.orderDomainValues(slot, a) {
		a[slot] = word
		if s.consistent(a) && s.backtrack(a) {
			return true
		}
		delete(a, slot)
	}
	return false
}

// consistent reports whether the partial assignment satisfies every
// constraint it touches: word lengths fit their slots, crossing slots agree
// on the shared letter, and no word is used twice.
func (s *Solver) consistent(a Assignment) bool {
	for slot, word := range a {
		if len(word) != slot.Length {
			return false
		}
		for _, n := range s.model.Neighbors(slot) {
			other, assigned := a[n]
			if !assigned {
				continue
			}
			ov, _ := s.model.Overlap(slot, n)
			if word[ov.XIndex] != other[ov.YIndex] {
				return false
			}
		}
	}
	return len(lo.Uniq(lo.Values(a))) == len(a)
}

// assignmentComplete reports whether every slot has a word and the whole
// assignment is consistent.
func (s *Solver) assignmentComplete(a Assignment) bool {
	for _, slot := range s.model.Slots() {
		if _, assigned := a[slot]; !assigned {
			return false
		}
	}
	return s.consistent(a)
}
