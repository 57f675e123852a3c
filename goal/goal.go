// Package goal holds proof goals, the resolution state each of them carries,
// and the reference implementations of hypothesis introduction and split budgets.
package goal

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/cottand/casesplit/facts"
	"github.com/cottand/casesplit/failed"
	"github.com/cottand/casesplit/proof"
	"github.com/cottand/casesplit/term"
)

type Goal struct {
	ID     uuid.UUID
	Parent *Goal
	// Depth is the number of splits between the top-level goal and this one
	Depth int
	// Hyps holds every hypothesis of the goal, inherited ones first
	Hyps  []proof.Hypothesis
	Facts *facts.Store
	State *State
}

// New builds a top-level goal out of hyps. They enter at generation 0,
// like the candidates already pending in state.
func New(state *State, hyps ...proof.Hypothesis) (*Goal, error) {
	g := &Goal{
		ID:    uuid.New(),
		Facts: facts.New(),
		State: state,
	}
	for _, c := range state.Pending {
		state.RecordGeneration(c, 0)
	}
	for _, h := range hyps {
		if err := g.add(h); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Hypothesis looks up a hypothesis of g by name
func (g *Goal) Hypothesis(name string) (proof.Hypothesis, bool) {
	i := slices.IndexFunc(g.Hyps, func(h proof.Hypothesis) bool { return h.Name == name })
	if i < 0 {
		return proof.Hypothesis{}, false
	}
	return g.Hyps[i], true
}

// Context is the proof context of g: every hypothesis name mapped to its proposition
func (g *Goal) Context() proof.Context {
	ctx := make(proof.Context, len(g.Hyps))
	for _, h := range g.Hyps {
		ctx[h.Name] = h.Prop
	}
	return ctx
}

// Closed reports whether the facts of g are contradictory
func (g *Goal) Closed() bool { return g.Facts.Inconsistent() }

func (g *Goal) String() string {
	return fmt.Sprintf("goal %s (depth %d, %d hyps)", g.ID.String()[:8], g.Depth, len(g.Hyps))
}

// add introduces h into g: it becomes a hypothesis and a fact. h, and the free variables
// its proposition mentions for the first time, get the goal's depth as generation.
func (g *Goal) add(h proof.Hypothesis) error {
	if _, exists := g.Hypothesis(h.Name); exists {
		return fmt.Errorf("hypothesis %s is already part of %v", h.Name, g)
	}
	g.Hyps = append(g.Hyps, h)
	hyp := h.FVar()
	if p, value, ok := term.AsTruth(h.Prop); ok {
		g.Facts = g.Facts.Assert(p, value, hyp)
	} else {
		g.Facts = g.Facts.Assert(h.Prop, true, proof.MkEqTrue(h.Prop, hyp))
	}
	g.State.SetGeneration(hyp, uint(g.Depth))
	for v := range term.FreeVars(h.Prop).Items() {
		g.State.RecordGeneration(v, uint(g.Depth))
	}
	return nil
}

// Queue adds t to the pending candidates of g, at the goal's depth as generation
func (g *Goal) Queue(t term.Term) {
	g.State.AddCandidate(t)
	g.State.SetGeneration(t, uint(g.Depth))
}

func (g *Goal) child() *Goal {
	return &Goal{
		ID:     uuid.New(),
		Parent: g,
		Depth:  g.Depth + 1,
		Hyps:   slices.Clone(g.Hyps),
		Facts:  g.Facts,
		State:  g.State.Branch(),
	}
}

// Introducer turns the cases of a split into child goals, one per case.
// Each child assumes its case's binder and hypotheses.
type Introducer struct{}

func (Introducer) Introduce(g *Goal, s proof.Split) ([]*Goal, error) {
	children := make([]*Goal, 0, len(s.Cases))
	for i, c := range s.Cases {
		child := g.child()
		for _, h := range slices.Concat([]proof.Hypothesis{c.Binder}, c.Hyps) {
			if err := child.add(h); err != nil {
				return nil, fmt.Errorf("case %d: %w", i, err)
			}
		}
		children = append(children, child)
	}
	return children, nil
}

// Budget bounds the number of splits along any path of the search
type Budget struct {
	Max uint
}

func (b Budget) CheckSplitBudget(g *Goal) error {
	if g.State.SplitCount >= b.Max {
		return failed.New(failed.NewLimitExceeded{SplitCount: g.State.SplitCount, Max: b.Max})
	}
	return nil
}
