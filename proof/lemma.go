package proof

import (
	"github.com/cottand/casesplit/term"
)

// lemma names
const (
	Em             = "Decidable.em"
	EqTrue         = "eq_true"
	EqFalse        = "eq_false"
	OfEqTrue       = "of_eq_true"
	OfEqFalse      = "of_eq_false"
	OrOfAndEqFalse = "or_of_and_eq_false"
	OfEqEqTrue     = "of_eq_eq_true"
	OfEqEqFalse    = "of_eq_eq_false"
	AndLeft        = "And.left"
	AndRight       = "And.right"
	NotOrLeft      = "not_or_left"
	NotOrRight     = "not_or_right"
	OfNotEqFalse   = "of_not_eq_false"
	TrueIntro      = "True.intro"
	NotFalse       = "not_false"
	// CasesOn is the elimination principle of matchers and inductive predicates.
	// Its instances are produced by the environment and are trusted by the Checker.
	CasesOn = "casesOn"
)

// lemma describes the statement of a lemma as a function of its proposition parameters
type lemma struct {
	params     int
	premises   func(ps []term.Term) []term.Term
	conclusion func(ps []term.Term) term.Term
}

var catalog = map[string]lemma{
	TrueIntro: {
		premises:   func(ps []term.Term) []term.Term { return nil },
		conclusion: func(ps []term.Term) term.Term { return term.True },
	},
	NotFalse: {
		premises:   func(ps []term.Term) []term.Term { return nil },
		conclusion: func(ps []term.Term) term.Term { return term.Not(term.False) },
	},
	Em: {
		params:     1,
		premises:   func(ps []term.Term) []term.Term { return nil },
		conclusion: func(ps []term.Term) term.Term { return term.Or(ps[0], term.Not(ps[0])) },
	},
	EqTrue: {
		params:     1,
		premises:   func(ps []term.Term) []term.Term { return []term.Term{ps[0]} },
		conclusion: func(ps []term.Term) term.Term { return term.EqTrue(ps[0]) },
	},
	EqFalse: {
		params:     1,
		premises:   func(ps []term.Term) []term.Term { return []term.Term{term.Not(ps[0])} },
		conclusion: func(ps []term.Term) term.Term { return term.EqFalse(ps[0]) },
	},
	OfEqTrue: {
		params:     1,
		premises:   func(ps []term.Term) []term.Term { return []term.Term{term.EqTrue(ps[0])} },
		conclusion: func(ps []term.Term) term.Term { return ps[0] },
	},
	OfEqFalse: {
		params:     1,
		premises:   func(ps []term.Term) []term.Term { return []term.Term{term.EqFalse(ps[0])} },
		conclusion: func(ps []term.Term) term.Term { return term.Not(ps[0]) },
	},
	OfNotEqFalse: {
		params:     1,
		premises:   func(ps []term.Term) []term.Term { return []term.Term{term.EqFalse(term.Not(ps[0]))} },
		conclusion: func(ps []term.Term) term.Term { return term.EqTrue(ps[0]) },
	},
	OrOfAndEqFalse: {
		params: 2,
		premises: func(ps []term.Term) []term.Term {
			return []term.Term{term.EqFalse(term.And(ps[0], ps[1]))}
		},
		conclusion: func(ps []term.Term) term.Term {
			return term.Or(term.Not(ps[0]), term.Not(ps[1]))
		},
	},
	OfEqEqTrue: {
		params: 2,
		premises: func(ps []term.Term) []term.Term {
			return []term.Term{term.EqTrue(term.Iff(ps[0], ps[1]))}
		},
		conclusion: func(ps []term.Term) term.Term {
			return term.Or(term.And(ps[0], ps[1]), term.And(term.Not(ps[0]), term.Not(ps[1])))
		},
	},
	OfEqEqFalse: {
		params: 2,
		premises: func(ps []term.Term) []term.Term {
			return []term.Term{term.EqFalse(term.Iff(ps[0], ps[1]))}
		},
		conclusion: func(ps []term.Term) term.Term {
			return term.Or(term.And(term.Not(ps[0]), ps[1]), term.And(ps[0], term.Not(ps[1])))
		},
	},
	AndLeft: {
		params:     2,
		premises:   func(ps []term.Term) []term.Term { return []term.Term{term.And(ps[0], ps[1])} },
		conclusion: func(ps []term.Term) term.Term { return ps[0] },
	},
	AndRight: {
		params:     2,
		premises:   func(ps []term.Term) []term.Term { return []term.Term{term.And(ps[0], ps[1])} },
		conclusion: func(ps []term.Term) term.Term { return ps[1] },
	},
	NotOrLeft: {
		params:     2,
		premises:   func(ps []term.Term) []term.Term { return []term.Term{term.Not(term.Or(ps[0], ps[1]))} },
		conclusion: func(ps []term.Term) term.Term { return term.Not(ps[0]) },
	},
	NotOrRight: {
		params:     2,
		premises:   func(ps []term.Term) []term.Term { return []term.Term{term.Not(term.Or(ps[0], ps[1]))} },
		conclusion: func(ps []term.Term) term.Term { return term.Not(ps[1]) },
	},
}

// Apply builds the proof term `name args...`
func Apply(name string, args ...term.Term) term.Term {
	return term.Apps(term.Const{Name: name}, args...)
}

func MkEm(p term.Term) term.Term               { return Apply(Em, p) }
func MkEqTrue(p, h term.Term) term.Term        { return Apply(EqTrue, p, h) }
func MkEqFalse(p, h term.Term) term.Term       { return Apply(EqFalse, p, h) }
func MkOfEqTrue(p, h term.Term) term.Term      { return Apply(OfEqTrue, p, h) }
func MkOfEqFalse(p, h term.Term) term.Term     { return Apply(OfEqFalse, p, h) }
func MkAndLeft(p, q, h term.Term) term.Term    { return Apply(AndLeft, p, q, h) }
func MkAndRight(p, q, h term.Term) term.Term   { return Apply(AndRight, p, q, h) }
func MkNotOrLeft(p, q, h term.Term) term.Term  { return Apply(NotOrLeft, p, q, h) }
func MkNotOrRight(p, q, h term.Term) term.Term { return Apply(NotOrRight, p, q, h) }
func MkOrOfAndEqFalse(p, q, h term.Term) term.Term {
	return Apply(OrOfAndEqFalse, p, q, h)
}

// MkTruth proves p = True (value) or p = False (!value) from h, which proves p or Not p respectively
func MkTruth(p, h term.Term, value bool) term.Term {
	if value {
		return MkEqTrue(p, h)
	}
	return MkEqFalse(p, h)
}
