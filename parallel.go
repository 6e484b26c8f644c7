package xwfill

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"crosswarped.com/xwfill/pkg/primitives"
)

// SolveParallel behaves like Solve but fans the root slot's candidates out
// across workers. Each branch owns a private copy of the domains (the
// shared store is never mutated mid-search) and re-propagates the arcs
// incident to the root before searching. The first complete fill wins and
// cancels the remaining branches. workers <= 0 means one per CPU.
func (s *Solver) SolveParallel(parent context.Context, workers int) (map[primitives.Slot]string, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	s.EnforceNodeConsistency()
	if !s.AC3(parent, nil) {
		if err := parent.Err(); err != nil {
			return nil, fmt.Errorf("propagation interrupted: %w", err)
		}
		return nil, ErrNoSolution
	}

	n := s.cw.NumSlots()
	if n == 0 {
		return s.solution(NewAssignment(0)), nil
	}

	empty := NewAssignment(n)
	root := s.selectUnassignedVariable(empty)
	values := s.orderDomainValues(root, empty)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex
	var solution map[primitives.Slot]string

	log.Debug().
		Stringer("root", s.cw.Slot(root)).
		Int("branches", len(values)).
		Int("workers", workers).
		Msg("starting parallel search")

	for _, word := range values {
		branch := s.branch(root, word)
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			arcs := make([]Arc, 0, len(s.cw.Neighbors(root)))
			for _, z := range s.cw.Neighbors(root) {
				arcs = append(arcs, Arc{X: z, Y: root})
			}
			if !branch.AC3(ctx, arcs) {
				return nil
			}

			asg := NewAssignment(n)
			asg.set(root, word)
			if !branch.Consistent(asg) || !branch.backtrack(ctx, asg) {
				return nil
			}

			mu.Lock()
			if solution == nil {
				solution = branch.solution(asg)
			}
			mu.Unlock()
			cancel()
			return nil
		})
	}

	_ = g.Wait()

	if solution != nil {
		return solution, nil
	}
	if err := parent.Err(); err != nil {
		return nil, fmt.Errorf("search interrupted: %w", err)
	}
	return nil, ErrNoSolution
}

// branch clones the solver for one root choice: private domain copies,
// the root slot pinned to a single word, and an independent rand stream.
func (s *Solver) branch(root int, word string) *Solver {
	domains := make([]primitives.WordSet, len(s.domains))
	for i := range s.domains {
		domains[i] = s.domains[i].Clone()
	}

	pinned := domains[root]
	for pos, r := range word {
		pinned = pinned.FilterChar(r, pos)
	}
	domains[root] = pinned

	return &Solver{
		cw:       s.cw,
		universe: s.universe,
		domains:  domains,
		rand:     rand.New(rand.NewPCG(s.rand.Uint64(), s.rand.Uint64())),
	}
}
