package split

import (
	"github.com/cottand/casesplit/facts"
	"github.com/cottand/casesplit/goal"
	"github.com/cottand/casesplit/introspect"
	"github.com/cottand/casesplit/proof"
	"github.com/cottand/casesplit/term"
)

// FactStore answers what the goal already knows about a term.
// The proofs it returns prove `t = True` and `t = False` under the goal's hypotheses.
type FactStore interface {
	IsEqTrue(t term.Term) bool
	IsEqFalse(t term.Term) bool
	EqTrueProof(t term.Term) (term.Term, error)
	EqFalseProof(t term.Term) (term.Term, error)
}

// Introspector knows the matchers and inductive predicates of the environment,
// and performs case analysis on their applications
type Introspector interface {
	MatcherInfo(t term.Term) (introspect.MatcherInfo, bool)
	InductivePredicateInfo(t term.Term) (introspect.InductiveInfo, bool)
	Cases(t term.Term, fresh func(hint string) string) (proof.Split, error)
}

// Introducer turns the cases of a split into new goals
type Introducer interface {
	Introduce(g *goal.Goal, s proof.Split) ([]*goal.Goal, error)
}

// Budget fails once g may not be split any further
type Budget interface {
	CheckSplitBudget(g *goal.Goal) error
}

var (
	_ FactStore    = (*facts.Store)(nil)
	_ Introspector = (*introspect.Env)(nil)
	_ Introducer   = goal.Introducer{}
	_ Budget       = goal.Budget{}
)
