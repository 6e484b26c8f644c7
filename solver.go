package xwfill

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"crosswarped.com/xwfill/pkg/primitives"
)

// ErrNoSolution is returned when no complete consistent fill exists. It is
// a normal outcome of an over-constrained puzzle, not a fault.
var ErrNoSolution = errors.New("no solution exists for this crossword")

// Solver bundles a crossword's geometry with the per-slot candidate word
// domains and drives propagation and search. The crossword and the word
// universe are read-only after construction; domains shrink under
// propagation and are frozen once search begins.
type Solver struct {
	cw       *Crossword
	universe *primitives.Universe
	domains  []primitives.WordSet

	rand *rand.Rand
}

// NewSolver creates a solver over the given crossword and vocabulary. If
// rnd is nil a time-seeded source is used; pass a seeded source for
// reproducible tie-breaking.
func NewSolver(cw *Crossword, words []string, rnd *rand.Rand) *Solver {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().Nanosecond())))
	}

	universe := primitives.NewUniverse(words)
	domains := make([]primitives.WordSet, cw.NumSlots())
	full := universe.FullSet()
	for i := range domains {
		domains[i] = full
	}

	return &Solver{
		cw:       cw,
		universe: universe,
		domains:  domains,
		rand:     rnd,
	}
}

// Crossword returns the puzzle geometry the solver was built over.
func (s *Solver) Crossword() *Crossword {
	return s.cw
}

// Domain returns the current candidate set for slot x.
func (s *Solver) Domain(x int) primitives.WordSet {
	return s.domains[x]
}

// EnforceNodeConsistency removes from every slot's domain each word whose
// length differs from the slot's length. Length never needs checking again
// afterwards; only crossing-letter constraints remain.
func (s *Solver) EnforceNodeConsistency() {
	for x := range s.domains {
		s.domains[x] = s.domains[x].OfLength(s.cw.Slot(x).Length)
	}

	log.Debug().
		Int("slots", s.cw.NumSlots()).
		Int("totalCandidates", lo.SumBy(s.domains, primitives.WordSet.Count)).
		Msg("node consistency enforced")
}

// Solve prunes the domains and searches for a complete consistent fill.
// It returns ErrNoSolution when the puzzle is unsatisfiable, or the
// context's error if the search was interrupted.
func (s *Solver) Solve(ctx context.Context) (map[primitives.Slot]string, error) {
	s.EnforceNodeConsistency()

	if !s.AC3(ctx, nil) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("propagation interrupted: %w", err)
		}
		return nil, ErrNoSolution
	}

	asg := NewAssignment(s.cw.NumSlots())
	if !s.backtrack(ctx, asg) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("search interrupted: %w", err)
		}
		return nil, ErrNoSolution
	}

	return s.solution(asg), nil
}

func (s *Solver) solution(asg *Assignment) map[primitives.Slot]string {
	out := make(map[primitives.Slot]string, s.cw.NumSlots())
	for x, slot := range s.cw.Slots() {
		out[slot] = asg.Word(x)
	}
	return out
}
