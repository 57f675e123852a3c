package split

import (
	"github.com/pkg/errors"

	"github.com/cottand/casesplit/failed"
	"github.com/cottand/casesplit/internal/log"
	"github.com/cottand/casesplit/proof"
	"github.com/cottand/casesplit/term"
)

var synthLogger = log.Section("split.synth")

// Synthesis is a justified split together with the candidates every one of
// its cases should split next
type Synthesis struct {
	proof.Split
	Followups []term.Term
}

// Synthesizer builds the cases of a split and the proofs justifying them.
// Fresh names the hypotheses it creates.
type Synthesizer struct {
	Facts FactStore
	Env   Introspector
	Fresh func(hint string) string
}

// Synthesize splits c. GenericBinary candidates are split by excluded middle on
// the candidate itself, Shaped ones according to their shape.
func (s Synthesizer) Synthesize(c Candidate) (Synthesis, error) {
	switch {
	case c.Status.IsGenericBinary():
		return Synthesis{Split: s.byCases(c.Term, c.Term)}, nil
	case c.Status.IsResolved():
		return Synthesis{}, failed.Invariant("synthesizing cases of resolved candidate %v", c.Term)
	}

	d := Decompose(s.Env, c.Term)
	synthLogger.Debug("synthesizing cases", "term", c.Term, "shape", d.Shape.String())
	switch d.Shape {
	case ShapeAnd:
		return s.and(d)
	case ShapeOr:
		p := s.undecided(d.Lhs, d.Rhs)
		return Synthesis{Split: s.byCases(d.Term, p), Followups: []term.Term{d.Term}}, nil
	case ShapeIff:
		return s.iff(d)
	case ShapeIteLike:
		return Synthesis{Split: s.byCases(d.Term, d.Cond)}, nil
	case ShapeMatcher, ShapeIndPred:
		split, err := s.Env.Cases(d.Term, s.Fresh)
		if err != nil {
			return Synthesis{}, errors.Wrapf(err, "case analysis on %v", d.Term)
		}
		return Synthesis{Split: split}, nil
	default:
		return Synthesis{}, failed.Invariant("candidate %v classified as %v has no shape", c.Term, c.Status)
	}
}

// undecided returns the first of p and q the goal does not know the value of, or p
func (s Synthesizer) undecided(p, q term.Term) term.Term {
	if s.Facts.IsEqTrue(p) || s.Facts.IsEqFalse(p) {
		if !s.Facts.IsEqTrue(q) && !s.Facts.IsEqFalse(q) {
			return q
		}
	}
	return p
}

func (s Synthesizer) binder(prop term.Term) proof.Hypothesis {
	h := proof.Hypothesis{Name: s.Fresh("h"), Prop: prop}
	h.Proof = h.FVar()
	return h
}

// truth is the hypothesis p = value, proved by h
func (s Synthesizer) truth(p, h term.Term, value bool) proof.Hypothesis {
	return proof.Hypothesis{Name: s.Fresh("h"), Prop: term.Truth(p, value), Proof: proof.MkTruth(p, h, value)}
}

func literal(p term.Term, value bool) term.Term {
	if value {
		return p
	}
	return term.Not(p)
}

// byCases splits t into the case where p holds and the one where it does not
func (s Synthesizer) byCases(t, p term.Term) proof.Split {
	split := proof.Split{
		Term:        t,
		Major:       proof.MkEm(p),
		Disjunction: term.Or(p, term.Not(p)),
	}
	for _, value := range []bool{true, false} {
		b := s.binder(literal(p, value))
		split.Cases = append(split.Cases, proof.Case{
			Binder: b,
			Hyps:   []proof.Hypothesis{s.truth(p, b.FVar(), value)},
		})
	}
	return split
}

func (s Synthesizer) and(d Decomposition) (Synthesis, error) {
	if !s.Facts.IsEqFalse(d.Term) {
		p := s.undecided(d.Lhs, d.Rhs)
		return Synthesis{Split: s.byCases(d.Term, p), Followups: []term.Term{d.Term}}, nil
	}
	h, err := s.Facts.EqFalseProof(d.Term)
	if err != nil {
		return Synthesis{}, errors.Wrapf(err, "conjunction %v", d.Term)
	}
	split := proof.Split{
		Term:        d.Term,
		Major:       proof.MkOrOfAndEqFalse(d.Lhs, d.Rhs, h),
		Disjunction: term.Or(term.Not(d.Lhs), term.Not(d.Rhs)),
		Premises:    []term.Term{term.EqFalse(d.Term)},
	}
	for _, p := range []term.Term{d.Lhs, d.Rhs} {
		b := s.binder(term.Not(p))
		split.Cases = append(split.Cases, proof.Case{
			Binder: b,
			Hyps:   []proof.Hypothesis{s.truth(p, b.FVar(), false)},
		})
	}
	return Synthesis{Split: split}, nil
}

// assign is the case where p and q take the values pv and qv, assumed as a conjunction
func (s Synthesizer) assign(p term.Term, pv bool, q term.Term, qv bool) proof.Case {
	lp, lq := literal(p, pv), literal(q, qv)
	b := s.binder(term.And(lp, lq))
	return proof.Case{
		Binder: b,
		Hyps: []proof.Hypothesis{
			s.truth(p, proof.MkAndLeft(lp, lq, b.FVar()), pv),
			s.truth(q, proof.MkAndRight(lp, lq, b.FVar()), qv),
		},
	}
}

func (s Synthesizer) iff(d Decomposition) (Synthesis, error) {
	p, q := d.Lhs, d.Rhs
	var (
		split proof.Split
		value bool
	)
	switch {
	case s.Facts.IsEqTrue(d.Term):
		value = true
	case s.Facts.IsEqFalse(d.Term):
		value = false
	default:
		// once one side is known the iff is resolved, so the other side is split on its own
		first := s.undecided(p, q)
		other := q
		if first == q {
			other = p
		}
		return Synthesis{Split: s.byCases(d.Term, first), Followups: []term.Term{other}}, nil
	}

	var h term.Term
	var err error
	if value {
		h, err = s.Facts.EqTrueProof(d.Term)
	} else {
		h, err = s.Facts.EqFalseProof(d.Term)
	}
	if err != nil {
		return Synthesis{}, errors.Wrapf(err, "bi-implication %v", d.Term)
	}

	split = proof.Split{Term: d.Term, Premises: []term.Term{term.Truth(d.Term, value)}}
	if value {
		split.Major = proof.Apply(proof.OfEqEqTrue, p, q, h)
		split.Cases = []proof.Case{s.assign(p, true, q, true), s.assign(p, false, q, false)}
	} else {
		split.Major = proof.Apply(proof.OfEqEqFalse, p, q, h)
		split.Cases = []proof.Case{s.assign(p, false, q, true), s.assign(p, true, q, false)}
	}
	split.Disjunction = term.Or(split.Cases[0].Binder.Prop, split.Cases[1].Binder.Prop)
	return Synthesis{Split: split}, nil
}
