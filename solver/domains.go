package solver

// enforceNodeConsistency removes from every domain the words whose length
// does not match the slot. A domain may legitimately come out empty here;
// that only becomes a failure once propagation or search sees it.
func (s *Solver) enforceNodeConsistency() {
	for slot, words := range s.domains {
		kept := make([]string, 0, len(words))
		for _, w := range words {
			if len(w) == slot.Length {
				kept = append(kept, w)
			}
		}
		s.domains[slot] = kept
	}
}
