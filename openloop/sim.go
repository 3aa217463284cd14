package openloop

import (
	"io"

	"github.com/katalvlaran/clsched/core"
)

// Sim drives one elaborated root through its linked schedule. The cursor
// counters are the only mutable state; the schedule and projection are
// immutable after Apply. One Sim per root — independent roots never share
// cursors. Not safe for concurrent use.
type Sim struct {
	root core.Root
	out  io.Writer

	schedule   []entry
	projection []entry
	projIndex  map[core.Vertex]int

	ports  []*core.CalleePort
	nbIfcs []*core.NBInterface

	// Cursor: newIdx indexes the projection, origIdx the full schedule.
	newIdx    int
	origIdx   int
	numCycles int
}

// Tick runs the remainder of the projection in order and closes the cycle:
// the cursor resets and the cycle count advances. With no intervening
// method calls this executes every projected block exactly once.
//
// A schedule whose projection is empty is permitted: the loop body is
// skipped and the cycle count still advances.
//
// On error the cursor is left unchanged; the schedule cannot be resumed
// reliably after a failure.
func (s *Sim) Tick() error {
	ni := s.newIdx
	for ni < len(s.projection) {
		if err := s.projection[ni].run(); err != nil {
			return err
		}
		ni++
	}
	s.newIdx, s.origIdx = 0, 0
	s.numCycles++

	return nil
}

// NumCyclesExecuted returns how many cycle boundaries have been crossed,
// by Tick or by method-call wrap-around.
func (s *Sim) NumCyclesExecuted() int { return s.numCycles }

// Port returns the wrapped callee port with the given name, nil when the
// root exposes none by that name.
func (s *Sim) Port(name string) *core.CalleePort {
	for _, p := range s.ports {
		if p.Name == name {
			return p
		}
	}

	return nil
}

// TopLevelNBIfcs returns the non-blocking interfaces in the order they
// were encountered during registration.
func (s *Sim) TopLevelNBIfcs() []*core.NBInterface { return s.nbIfcs }

// Schedule returns the vertices of the full schedule in slot order.
func (s *Sim) Schedule() []core.Vertex {
	out := make([]core.Vertex, len(s.schedule))
	for i, e := range s.schedule {
		out[i] = e.vtx
	}

	return out
}

// Projection returns the vertices of the methodless projection in order.
func (s *Sim) Projection() []core.Vertex {
	out := make([]core.Vertex, len(s.projection))
	for i, e := range s.projection {
		out[i] = e.vtx
	}

	return out
}

// wrap builds the cursor wrapper for port p sitting at schedule slot
// origIdx, whose next projected block is target.
//
// Invoking the wrapper executes the projected prefix up to target, then the
// method body. If the port's slot already passed this cycle (strictly —
// consecutive calls at one slot share a collapsed target and need no wrap),
// the wrapper first finishes the cycle and wraps around. Cursor updates
// commit only on success, so any error leaves the cursor unchanged.
//
// Methods are not re-entrant; detection is the caller's concern.
func (s *Sim) wrap(p *core.CalleePort, origIdx, target int) func(args ...any) (any, error) {
	return func(args ...any) (any, error) {
		ni, nc := s.newIdx, s.numCycles

		if s.origIdx > origIdx {
			for ni < len(s.projection) {
				if err := s.projection[ni].run(); err != nil {
					return nil, err
				}
				ni++
			}
			ni = 0
			nc++
		}

		for ni < target {
			if err := s.projection[ni].run(); err != nil {
				return nil, err
			}
			ni++
		}

		res, err := p.Func(args...)
		if err != nil {
			return nil, err
		}

		s.newIdx, s.origIdx, s.numCycles = ni, origIdx+1, nc
		p.MarkCalled()

		return res, nil
	}
}
