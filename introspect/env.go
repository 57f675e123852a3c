// Package introspect answers questions about matchers and inductive predicates,
// and performs case analysis on their applications.
package introspect

import (
	"fmt"

	"github.com/cottand/casesplit/proof"
	"github.com/cottand/casesplit/term"
)

// MatcherInfo describes a compiled pattern match `name d_1 ... d_n alt_1 ... alt_m`.
// Patterns[i] holds the pattern of every discriminant for alternative i.
type MatcherInfo struct {
	Name      string
	NumDiscrs int
	Patterns  [][]term.Term
}

func (m MatcherInfo) AltCount() int { return len(m.Patterns) }

// InductiveInfo describes a proposition-valued inductive type
type InductiveInfo struct {
	Name         string
	Constructors []string
}

func (i InductiveInfo) CtorCount() int { return len(i.Constructors) }

// Env is a registry of matchers and inductive predicates, keyed by name
type Env struct {
	matchers   map[string]MatcherInfo
	inductives map[string]InductiveInfo
}

func NewEnv() *Env {
	return &Env{
		matchers:   make(map[string]MatcherInfo),
		inductives: make(map[string]InductiveInfo),
	}
}

func (e *Env) AddMatcher(info MatcherInfo) error {
	if info.NumDiscrs < 1 {
		return fmt.Errorf("matcher %s must have at least one discriminant", info.Name)
	}
	for i, patterns := range info.Patterns {
		if len(patterns) != info.NumDiscrs {
			return fmt.Errorf("alternative %d of matcher %s has %d patterns, expected %d", i, info.Name, len(patterns), info.NumDiscrs)
		}
	}
	e.matchers[info.Name] = info
	return nil
}

func (e *Env) AddInductivePredicate(info InductiveInfo) {
	e.inductives[info.Name] = info
}

func headName(t term.Term) (string, bool) {
	head, ok := term.AppFn(t).(term.Const)
	return head.Name, ok
}

// MatcherInfo returns the matcher t is a saturated application of
func (e *Env) MatcherInfo(t term.Term) (MatcherInfo, bool) {
	name, ok := headName(t)
	if !ok {
		return MatcherInfo{}, false
	}
	info, ok := e.matchers[name]
	if !ok || len(term.AppArgs(t)) < info.NumDiscrs {
		return MatcherInfo{}, false
	}
	return info, true
}

// InductivePredicateInfo returns the inductive predicate t is an application of
func (e *Env) InductivePredicateInfo(t term.Term) (InductiveInfo, bool) {
	name, ok := headName(t)
	if !ok {
		return InductiveInfo{}, false
	}
	info, ok := e.inductives[name]
	return info, ok
}

// Cases performs case analysis on t, which must be a matcher or inductive predicate application.
// fresh is used to name the hypotheses of each case.
func (e *Env) Cases(t term.Term, fresh func(hint string) string) (proof.Split, error) {
	if info, ok := e.MatcherInfo(t); ok {
		return matcherCases(t, info, fresh), nil
	}
	if info, ok := e.InductivePredicateInfo(t); ok {
		return inductiveCases(t, info, fresh), nil
	}
	return proof.Split{}, fmt.Errorf("no case analysis available for %v", t)
}

func matcherCases(t term.Term, info MatcherInfo, fresh func(string) string) proof.Split {
	discrs := term.AppArgs(t)[:info.NumDiscrs]
	split := proof.Split{Term: t, Major: proof.Apply(proof.CasesOn, t)}
	var binders []term.Term
	for _, patterns := range info.Patterns {
		eqs := make([]term.Term, len(discrs))
		for j, d := range discrs {
			eqs[j] = term.Eq(d, patterns[j])
		}
		binder := proof.Hypothesis{Name: fresh("alt"), Prop: conjunction(eqs)}
		binder.Proof = binder.FVar()
		c := proof.Case{Binder: binder}
		for j, prf := range conjuncts(eqs, binder.FVar()) {
			c.Hyps = append(c.Hyps, proof.Hypothesis{Name: fresh("heq"), Prop: eqs[j], Proof: prf})
		}
		split.Cases = append(split.Cases, c)
		binders = append(binders, binder.Prop)
	}
	split.Disjunction = proof.Disjunction(binders...)
	return split
}

func inductiveCases(t term.Term, info InductiveInfo, fresh func(string) string) proof.Split {
	args := term.AppArgs(t)
	split := proof.Split{Term: t, Major: proof.Apply(proof.CasesOn, t)}
	var binders []term.Term
	for _, ctor := range info.Constructors {
		binder := proof.Hypothesis{Name: fresh("ctor"), Prop: term.Apps(term.Const{Name: ctor}, args...)}
		binder.Proof = binder.FVar()
		split.Cases = append(split.Cases, proof.Case{
			Binder: binder,
			Hyps:   []proof.Hypothesis{{Name: fresh("h"), Prop: binder.Prop, Proof: binder.FVar()}},
		})
		binders = append(binders, binder.Prop)
	}
	split.Disjunction = proof.Disjunction(binders...)
	return split
}

// conjunction builds the right-nested conjunction of props
func conjunction(props []term.Term) term.Term {
	c := props[len(props)-1]
	for i := len(props) - 2; i >= 0; i-- {
		c = term.And(props[i], c)
	}
	return c
}

// conjuncts projects a proof h of conjunction(props) onto a proof of every prop
func conjuncts(props []term.Term, h term.Term) []term.Term {
	proofs := make([]term.Term, len(props))
	for i := range props {
		if i == len(props)-1 {
			proofs[i] = h
			break
		}
		rest := conjunction(props[i+1:])
		proofs[i] = proof.MkAndLeft(props[i], rest, h)
		h = proof.MkAndRight(props[i], rest, h)
	}
	return proofs
}
