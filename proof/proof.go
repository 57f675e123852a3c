// Package proof holds the proof terms justifying case splits, the lemmas they are built
// from, and a checker for them.
package proof

import (
	"github.com/cottand/casesplit/term"
)

// Hypothesis is a named proposition together with the proof term justifying it.
// Proof may refer to the FVar of the enclosing Case's Binder.
type Hypothesis struct {
	Name  string
	Prop  term.Term
	Proof term.Term
}

func (h Hypothesis) FVar() term.FVar { return term.FVar{Name: h.Name} }

// Case is one branch of a split.
// Binder is the disjunct this branch assumes; its Proof is its own FVar.
// Hyps are the facts the branch adds to its goal, each justified from Binder.
type Case struct {
	Binder Hypothesis
	Hyps   []Hypothesis
}

// Split is a fully justified case split on Term.
//
// Major proves Disjunction, which is the right-nested disjunction of every
// Case's Binder.Prop. Premises are the facts Major relies on.
type Split struct {
	Term        term.Term
	Major       term.Term
	Disjunction term.Term
	Premises    []term.Term
	Cases       []Case
}

// Disjunction builds the right-nested disjunction of props
func Disjunction(props ...term.Term) term.Term {
	if len(props) == 0 {
		return term.False
	}
	d := props[len(props)-1]
	for i := len(props) - 2; i >= 0; i-- {
		d = term.Or(props[i], d)
	}
	return d
}

// disjuncts peels n disjuncts off a right-nested disjunction
func disjuncts(d term.Term, n int) ([]term.Term, bool) {
	out := make([]term.Term, 0, n)
	for len(out) < n-1 {
		lhs, rhs, ok := term.Binary(d, term.NameOr)
		if !ok {
			return nil, false
		}
		out = append(out, lhs)
		d = rhs
	}
	return append(out, d), true
}
