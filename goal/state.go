package goal

import (
	"fmt"
	"slices"

	"github.com/benbjohnson/immutable"

	"github.com/cottand/casesplit/term"
)

// State is the resolution state of one proof attempt: the pending split candidates,
// the number of splits performed so far, and the generation of every hypothesis.
//
// It is not safe for concurrent use. Child goals get their own State through Branch;
// the generation map is persistent, so branching is cheap.
type State struct {
	// Pending are the candidates the next scan will classify, in insertion order
	Pending []term.Term
	// SplitCount only ever grows along a path of the search
	SplitCount uint

	// generations is only ever grown: hypotheses are never removed from a goal
	generations *immutable.Map[term.Term, uint]
	// names numbers fresh hypothesis names
	names uint
}

func NewState(candidates ...term.Term) *State {
	s := &State{generations: immutable.NewMap[term.Term, uint](term.Hasher{})}
	for _, c := range candidates {
		s.AddCandidate(c)
	}
	return s
}

// AddCandidate queues t for splitting, unless it is already pending
func (s *State) AddCandidate(t term.Term) {
	if slices.ContainsFunc(s.Pending, func(p term.Term) bool { return term.Equal(p, t) }) {
		return
	}
	s.Pending = append(s.Pending, t)
}

// Generation returns the generation recorded for t, or 0
func (s *State) Generation(t term.Term) uint {
	gen, _ := s.generations.Get(t)
	return gen
}

func (s *State) HasGeneration(t term.Term) bool {
	_, ok := s.generations.Get(t)
	return ok
}

// SetGeneration records gen for t. Generations never decrease, so a lower gen is ignored.
func (s *State) SetGeneration(t term.Term, gen uint) {
	if old, ok := s.generations.Get(t); ok && old >= gen {
		return
	}
	s.generations = s.generations.Set(t, gen)
}

// RecordGeneration records gen for t unless t already has a generation
func (s *State) RecordGeneration(t term.Term, gen uint) {
	if s.HasGeneration(t) {
		return
	}
	s.generations = s.generations.Set(t, gen)
}

// MinGeneration is the smallest generation among the free variables t depends on.
// Free variables that were never introduced as hypotheses count as generation 0,
// as does a term with no free variables.
func (s *State) MinGeneration(t term.Term) uint {
	first := true
	var least uint
	for v := range term.FreeVars(t).Items() {
		gen := s.Generation(v)
		if first || gen < least {
			least, first = gen, false
		}
	}
	return least
}

// Fresh returns a hypothesis name that was never handed out along this path of the search
func (s *State) Fresh(hint string) string {
	s.names++
	return fmt.Sprintf("%s.%d", hint, s.names)
}

// Snapshot is what a failed split restores. The pending list is not part of it:
// dropping Resolved candidates is idempotent, so a scan's effect on it is kept,
// and the split puts its own candidate back.
type Snapshot struct {
	splitCount  uint
	generations *immutable.Map[term.Term, uint]
	names       uint
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{splitCount: s.SplitCount, generations: s.generations, names: s.names}
}

func (s *State) Restore(snap Snapshot) {
	s.SplitCount = snap.splitCount
	s.generations = snap.generations
	s.names = snap.names
}

// Branch copies s for a child goal
func (s *State) Branch() *State {
	return &State{
		Pending:     slices.Clone(s.Pending),
		SplitCount:  s.SplitCount,
		generations: s.generations,
		names:       s.names,
	}
}

// GenerationCount is the number of terms with a recorded generation
func (s *State) GenerationCount() int { return s.generations.Len() }
