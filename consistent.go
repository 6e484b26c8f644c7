package xwfill

// Consistent verifies a partial assignment purely from the assignment and
// the puzzle geometry: all assigned words are pairwise distinct, every
// assigned word fits its slot's length, and crossing slots agree on the
// shared letter. Unassigned slots impose no constraint yet, so the empty
// assignment is always consistent. The domain store is never consulted.
func (s *Solver) Consistent(a *Assignment) bool {
	seen := make(map[string]bool, s.cw.NumSlots())

	for x := range s.cw.NumSlots() {
		if !a.Assigned(x) {
			continue
		}
		word := a.Word(x)

		if seen[word] {
			return false
		}
		seen[word] = true

		if len(word) != s.cw.Slot(x).Length {
			return false
		}

		for _, y := range s.cw.Neighbors(x) {
			if y < x || !a.Assigned(y) {
				// Each crossing pair is checked once, from its lower index.
				continue
			}
			o, ok := s.cw.Overlap(x, y)
			if !ok {
				continue
			}
			if word[o.XPos] != a.Word(y)[o.YPos] {
				return false
			}
		}
	}

	return true
}

// AssignmentComplete reports whether every slot has a word assigned.
func (s *Solver) AssignmentComplete(a *Assignment) bool {
	return a.Complete()
}
