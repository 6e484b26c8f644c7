package xwfill

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolveParallel_FindsValidFill(t *testing.T) {
	s := newTestSolver(t, []string{
		"____",
		"_##_",
		"_##_",
		"____",
	}, []string{"care", "cost", "ever", "tier", "tree", "rope", "acre", "ease"})

	solution, err := s.SolveParallel(t.Context(), 4)
	require.NoError(t, err)
	requireValidSolution(t, s.Crossword(), solution)
}

func TestSolveParallel_SharedDomainsUntouched(t *testing.T) {
	s := newTestSolver(t, []string{
		"____",
		"_##_",
		"_##_",
		"____",
	}, []string{"care", "cost", "ever", "tier", "tree", "rope"})

	_, err := s.SolveParallel(t.Context(), 2)
	require.NoError(t, err)

	// Branches search on private copies; the shared store still holds the
	// arc-consistent domains, with no branch's pinning visible.
	for x := range s.cw.NumSlots() {
		require.Greater(t, s.Domain(x).Count(), 1, "slot %s", s.cw.Slot(x))
	}
}

func TestSolveParallel_NoSolution(t *testing.T) {
	s := newTestSolver(t, []string{
		"___",
		"###",
		"___",
	}, []string{"cat", "bird"})

	_, err := s.SolveParallel(t.Context(), 4)
	require.ErrorIs(t, err, ErrNoSolution)
}

func TestSolveParallel_CancelledContext(t *testing.T) {
	s := newTestSolver(t, []string{"___"}, []string{"cat", "dog"})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := s.SolveParallel(ctx, 2)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNoSolution)
}
