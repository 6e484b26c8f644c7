package xwfill

import (
	"context"

	"github.com/rs/zerolog/log"

	"crosswarped.com/xwfill/pkg/primitives"
)

// Arc is an ordered pair of slot indices: "make X consistent with Y".
type Arc struct {
	X int
	Y int
}

// Revise removes from slot x's domain every word with no compatible
// counterpart in slot y's domain at the crossing cell. It reports whether
// anything was removed. Non-crossing pairs are a no-op.
func (s *Solver) Revise(x, y int) bool {
	o, ok := s.cw.Overlap(x, y)
	if !ok {
		return false
	}

	// Accumulate the letters y's domain still supports at the crossing
	// cell, then keep only x's words matching one of them.
	avail := primitives.NewCharSet()
	s.domains[y].CharsAt(avail, o.YPos)

	newX := s.domains[x].FilterAny(avail, o.XPos)
	if newX.Count() == s.domains[x].Count() {
		return false
	}
	s.domains[x] = newX
	return true
}

// AC3 propagates crossing-letter constraints to a fixed point. With a nil
// initial list it starts from every ordered crossing pair; otherwise the
// given arcs seed the worklist, which supports incremental re-propagation
// after narrowing a single slot. Returns false as soon as any domain
// empties (no fill is possible), or if the context is done.
//
// The worklist is FIFO; pending arcs are deduplicated, which changes only
// the amount of redundant work, never the fixed point.
func (s *Solver) AC3(ctx context.Context, initial []Arc) bool {
	var queue []Arc
	if initial == nil {
		for x := range s.domains {
			for _, y := range s.cw.Neighbors(x) {
				queue = append(queue, Arc{X: x, Y: y})
			}
		}
	} else {
		queue = append(queue, initial...)
	}

	pending := make(map[Arc]bool, len(queue))
	for _, a := range queue {
		pending[a] = true
	}

	processed := 0
	for len(queue) > 0 {
		if ctx.Err() != nil {
			return false
		}

		arc := queue[0]
		queue = queue[1:]
		delete(pending, arc)
		processed++

		if !s.Revise(arc.X, arc.Y) {
			continue
		}
		if s.domains[arc.X].IsEmpty() {
			log.Debug().
				Stringer("slot", s.cw.Slot(arc.X)).
				Int("arcsProcessed", processed).
				Msg("domain wiped out during propagation")
			return false
		}
		for _, z := range s.cw.Neighbors(arc.X) {
			if z == arc.Y {
				continue
			}
			back := Arc{X: z, Y: arc.X}
			if !pending[back] {
				pending[back] = true
				queue = append(queue, back)
			}
		}
	}

	log.Debug().Int("arcsProcessed", processed).Msg("arc consistency established")
	return true
}
