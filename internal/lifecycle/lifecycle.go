// Package lifecycle tracks the application bootstrap phase so request
// handling can be gated until the database is ready.
package lifecycle

import "sync/atomic"

type Phase int32

const (
	PhaseStarting Phase = iota
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseStarting:
		return "starting"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State holds the current bootstrap phase. Safe for concurrent use.
type State struct {
	phase atomic.Int32
}

// NewState returns a state in the Starting phase.
func NewState() *State {
	return &State{}
}

func (s *State) Set(p Phase) {
	s.phase.Store(int32(p))
}

func (s *State) Phase() Phase {
	return Phase(s.phase.Load())
}

func (s *State) IsReady() bool {
	return s.Phase() == PhaseReady
}
