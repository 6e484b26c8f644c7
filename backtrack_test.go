package xwfill

import (
	"testing"

	"github.com/matryer/is"
)

func TestSelectUnassignedVariable_FewestRemainingFirst(t *testing.T) {
	is := is.New(t)
	// One 3-slot and one 4-slot; with a single 4-letter word the 4-slot
	// has the smaller domain and must be picked.
	s := newTestSolver(t, []string{
		"___#",
		"####",
		"____",
	}, []string{"cat", "dog", "tar", "cart"})
	s.EnforceNodeConsistency()

	a := NewAssignment(s.cw.NumSlots())
	x := s.selectUnassignedVariable(a)
	is.Equal(s.cw.Slot(x).Length, 4)

	// Once assigned, the remaining slot is the only choice left.
	a.set(x, "cart")
	is.Equal(s.cw.Slot(s.selectUnassignedVariable(a)).Length, 3)
}

func TestSelectUnassignedVariable_DegreeBreaksTies(t *testing.T) {
	is := is.New(t)
	// Two crossing slots and one isolated slot, all with equal domains;
	// the isolated slot has degree 0 and must lose the tie-break.
	s := newTestSolver(t, []string{
		"___",
		"_##",
		"_##",
		"###",
		"___",
	}, []string{"cat", "dog", "car"})
	s.EnforceNodeConsistency()

	x := s.selectUnassignedVariable(NewAssignment(s.cw.NumSlots()))
	is.Equal(s.cw.Degree(x), 1)
}

func TestOrderDomainValues_LeastConstrainingFirst(t *testing.T) {
	is := is.New(t)
	s, across, _ := crossingSolver(t)
	s.EnforceNodeConsistency()

	// "dog" rules out both c-words at the crossing; the c-words each rule
	// out only "dog". Universe order breaks the tie between the c-words.
	got := s.orderDomainValues(across, NewAssignment(s.cw.NumSlots()))
	is.Equal(got, []string{"cat", "car", "dog"})
}

func TestOrderDomainValues_AssignedNeighborsIgnored(t *testing.T) {
	is := is.New(t)
	s, across, down := crossingSolver(t)
	s.EnforceNodeConsistency()

	// With the only neighbor assigned there is nothing to constrain, so
	// the order falls back to universe order.
	a := NewAssignment(s.cw.NumSlots())
	a.set(down, "car")
	is.Equal(s.orderDomainValues(across, a), []string{"cat", "car", "dog"})
}

func TestBacktrack_UndoesTentativeEntriesOnFailure(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t, []string{
		"___",
		"###",
		"___",
	}, []string{"cat", "bird"})
	s.EnforceNodeConsistency()
	is.True(s.AC3(t.Context(), nil))

	a := NewAssignment(s.cw.NumSlots())
	is.True(!s.backtrack(t.Context(), a))

	// Failure leaves the assignment exactly as it was handed in.
	for x := range s.cw.NumSlots() {
		is.True(!a.Assigned(x))
	}
}

func TestBacktrack_SolutionSatisfiesBothChecks(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t, []string{
		"____",
		"_##_",
		"_##_",
		"____",
	}, []string{"care", "cost", "ever", "tier", "tree", "rope"})
	s.EnforceNodeConsistency()
	is.True(s.AC3(t.Context(), nil))

	a := NewAssignment(s.cw.NumSlots())
	is.True(s.backtrack(t.Context(), a))
	is.True(s.Consistent(a))
	is.True(s.AssignmentComplete(a))
}
