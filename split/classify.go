package split

import (
	"github.com/cottand/casesplit/internal/log"
	"github.com/cottand/casesplit/term"
)

var classifyLogger = log.Section("split.classify")

// Shapes selects which structural shapes are split according to their structure.
// A disabled shape classifies as GenericBinary.
type Shapes struct {
	Ite     bool
	Match   bool
	IndPred bool
}

func AllShapes() Shapes { return Shapes{Ite: true, Match: true, IndPred: true} }

// Classifier classifies split candidates against the facts of one goal
type Classifier struct {
	Facts  FactStore
	Env    Introspector
	Shapes Shapes
}

func (c Classifier) decided(t term.Term) bool {
	return c.Facts.IsEqTrue(t) || c.Facts.IsEqFalse(t)
}

// Classify tells whether t still needs splitting, and into how many cases.
// It never consults the shape of an operand once the value of a connective is forced.
func (c Classifier) Classify(t term.Term) Status {
	if c.decided(t) {
		return Resolved
	}
	d := Decompose(c.Env, t)
	status := c.classify(d)
	classifyLogger.Debug("classified candidate", "term", t, "shape", d.Shape.String(), "status", status.String())
	return status
}

func (c Classifier) classify(d Decomposition) Status {
	switch d.Shape {
	case ShapeAnd:
		if c.Facts.IsEqFalse(d.Lhs) || c.Facts.IsEqFalse(d.Rhs) {
			return Resolved
		}
		if c.Facts.IsEqTrue(d.Lhs) && c.Facts.IsEqTrue(d.Rhs) {
			return Resolved
		}
		return Shaped(2, true)
	case ShapeOr:
		if c.Facts.IsEqTrue(d.Lhs) || c.Facts.IsEqTrue(d.Rhs) {
			return Resolved
		}
		if c.Facts.IsEqFalse(d.Lhs) && c.Facts.IsEqFalse(d.Rhs) {
			return Resolved
		}
		return Shaped(2, true)
	case ShapeIff:
		if c.decided(d.Lhs) || c.decided(d.Rhs) {
			return Resolved
		}
		return Shaped(2, true)
	case ShapeIteLike:
		if !c.Shapes.Ite {
			return GenericBinary
		}
		if c.decided(d.Cond) {
			return Resolved
		}
		return Shaped(2, false)
	case ShapeMatcher:
		if !c.Shapes.Match || d.Matcher.AltCount() < 2 {
			return GenericBinary
		}
		return Shaped(d.Matcher.AltCount(), false)
	case ShapeIndPred:
		if !c.Shapes.IndPred || d.Inductive.CtorCount() < 2 {
			return GenericBinary
		}
		return Shaped(d.Inductive.CtorCount(), false)
	default:
		return GenericBinary
	}
}
