package proof

import (
	"github.com/benbjohnson/immutable"
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/cottand/casesplit/term"
)

// encoder abstracts propositions into a boolean circuit: connectives become gates,
// every other proposition becomes an atom
type encoder struct {
	c     *logic.C
	atoms *immutable.Map[term.Term, z.Lit]
}

func newEncoder() *encoder {
	return &encoder{c: logic.NewC(), atoms: immutable.NewMap[term.Term, z.Lit](term.Hasher{})}
}

func (e *encoder) encode(t term.Term) z.Lit {
	if term.IsConst(t, term.NameTrue) {
		return e.c.T
	}
	if term.IsConst(t, term.NameFalse) {
		return e.c.F
	}
	if p, value, ok := term.AsTruth(t); ok {
		if value {
			return e.encode(p)
		}
		return e.encode(p).Not()
	}
	if p, ok := term.Unary(t, term.NameNot); ok {
		return e.encode(p).Not()
	}
	if p, q, ok := term.Binary(t, term.NameAnd); ok {
		return e.c.And(e.encode(p), e.encode(q))
	}
	if p, q, ok := term.Binary(t, term.NameOr); ok {
		return e.c.Or(e.encode(p), e.encode(q))
	}
	if p, q, ok := term.Binary(t, term.NameIff); ok {
		a, b := e.encode(p), e.encode(q)
		return e.c.Or(e.c.And(a, b), e.c.And(a.Not(), b.Not()))
	}
	if lit, ok := e.atoms.Get(t); ok {
		return lit
	}
	lit := e.c.Lit()
	e.atoms = e.atoms.Set(t, lit)
	return lit
}

// Exhaustive reports whether, under premises, at least one case's hypotheses always hold.
// A split whose cases are not exhaustive would drop models and must never be committed.
func Exhaustive(premises []term.Term, cases []Case) bool {
	e := newEncoder()
	assumptions := make([]z.Lit, 0, len(premises)+2)
	assumptions = append(assumptions, e.c.T)
	for _, premise := range premises {
		assumptions = append(assumptions, e.encode(premise))
	}
	covered := e.c.F
	for _, c := range cases {
		branch := e.c.T
		for _, h := range c.Hyps {
			branch = e.c.And(branch, e.encode(h.Prop))
		}
		covered = e.c.Or(covered, branch)
	}
	assumptions = append(assumptions, covered.Not())

	g := gini.New()
	e.c.ToCnf(g)
	g.Assume(assumptions...)
	return g.Solve() == -1
}
