package xwfill

import (
	"context"
	"fmt"
	"slices"
)

// backtrack is a depth-first search over partial assignments. Stack depth
// is bounded by the number of slots. On success the assignment holds the
// complete fill; on failure every tentative entry added here has been
// removed again.
func (s *Solver) backtrack(ctx context.Context, a *Assignment) bool {
	if ctx.Err() != nil {
		return false
	}
	if a.Complete() {
		return true
	}

	x := s.selectUnassignedVariable(a)
	for _, word := range s.orderDomainValues(x, a) {
		a.set(x, word)
		if s.Consistent(a) && s.backtrack(ctx, a) {
			return true
		}
		a.clear(x)
	}
	return false
}

// selectUnassignedVariable picks the unassigned slot with the fewest
// remaining candidates, breaking ties by the highest crossing count and
// then by shuffling the equivalent options.
func (s *Solver) selectUnassignedVariable(a *Assignment) int {
	least := -1
	var opts []int
	for x := range s.domains {
		if a.Assigned(x) {
			continue
		}
		if c := s.domains[x].Count(); least == -1 || c < least {
			least = c
		}
		opts = append(opts, x)
	}

	if len(opts) == 0 {
		panic("selectUnassignedVariable called with a complete assignment -- this should never happen")
	}

	opts = slices.DeleteFunc(opts, func(x int) bool {
		return s.domains[x].Count() != least
	})

	most := -1
	for _, x := range opts {
		if d := s.cw.Degree(x); d > most {
			most = d
		}
	}
	opts = slices.DeleteFunc(opts, func(x int) bool {
		return s.cw.Degree(x) != most
	})

	// Shuffles the equivalent options:
	if len(opts) > 1 {
		s.rand.Shuffle(len(opts), func(i, j int) {
			opts[i], opts[j] = opts[j], opts[i]
		})
	}

	return opts[0]
}

// orderDomainValues returns slot x's candidates, least-constraining first:
// ascending by how many candidates each word would rule out across x's
// unassigned crossing slots. Ordering affects only how fast a fill is
// found, never whether one exists.
func (s *Solver) orderDomainValues(x int, a *Assignment) []string {
	words := s.domains[x].Words()
	if len(words) <= 1 {
		return words
	}

	conflicts := make(map[string]int, len(words))
	for _, y := range s.cw.Neighbors(x) {
		if a.Assigned(y) {
			continue
		}
		o, ok := s.cw.Overlap(x, y)
		if !ok {
			panic(fmt.Sprintf("slot %s crosses %s with no overlap recorded -- this should never happen",
				s.cw.Slot(x), s.cw.Slot(y)))
		}
		total := s.domains[y].Count()
		for _, w := range words {
			conflicts[w] += total - s.domains[y].CountWithCharAt(rune(w[o.XPos]), o.YPos)
		}
	}

	slices.SortStableFunc(words, func(a, b string) int {
		return conflicts[a] - conflicts[b]
	})
	return words
}
