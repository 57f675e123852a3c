package split

import (
	"github.com/cottand/casesplit/introspect"
	"github.com/cottand/casesplit/term"
)

type Shape uint8

const (
	ShapeOther Shape = iota
	ShapeAnd
	ShapeOr
	ShapeIff
	ShapeIteLike
	ShapeMatcher
	ShapeIndPred
)

var shapeNames = map[Shape]string{
	ShapeOther:   "other",
	ShapeAnd:     "and",
	ShapeOr:      "or",
	ShapeIff:     "iff",
	ShapeIteLike: "ite",
	ShapeMatcher: "matcher",
	ShapeIndPred: "ind_pred",
}

func (s Shape) String() string { return shapeNames[s] }

// Decomposition is a candidate taken apart once, so that classification and
// synthesis agree on what they are looking at
type Decomposition struct {
	Shape Shape
	Term  term.Term
	// Lhs and Rhs are the operands of And, Or and Iff
	Lhs, Rhs term.Term
	// Cond is the condition of an ite or dite
	Cond      term.Term
	Matcher   introspect.MatcherInfo
	Inductive introspect.InductiveInfo
}

// Decompose recognises the shape of t. Only matcher and inductive predicate
// applications consult env, and only once t is known not to be a connective or ite.
func Decompose(env Introspector, t term.Term) Decomposition {
	t = term.StripMData(t)
	d := Decomposition{Term: t}
	if _, ok := t.(*term.App); !ok {
		return d
	}
	for _, connective := range []struct {
		name  string
		shape Shape
	}{
		{term.NameAnd, ShapeAnd},
		{term.NameOr, ShapeOr},
		{term.NameIff, ShapeIff},
	} {
		if lhs, rhs, ok := term.Binary(t, connective.name); ok {
			d.Shape, d.Lhs, d.Rhs = connective.shape, lhs, rhs
			return d
		}
	}
	if args := term.AppArgs(t); len(args) == 3 {
		if term.IsConst(term.AppFn(t), term.NameIte) || term.IsConst(term.AppFn(t), term.NameDite) {
			d.Shape, d.Cond = ShapeIteLike, args[0]
			return d
		}
	}
	if info, ok := env.MatcherInfo(t); ok {
		d.Shape, d.Matcher = ShapeMatcher, info
		return d
	}
	if info, ok := env.InductivePredicateInfo(t); ok {
		d.Shape, d.Inductive = ShapeIndPred, info
		return d
	}
	return d
}
