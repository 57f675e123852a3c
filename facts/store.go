// Package facts is a persistent, proof-producing store of terms known to be equal to
// True or False.
//
// It stands in for the congruence-closure fact store of a full prover: it propagates
// truth values through Not, And and Or, but does no congruence reasoning.
// Every Store is immutable; Assert returns a new one sharing structure with the old.
package facts

import (
	"fmt"

	"github.com/benbjohnson/immutable"

	"github.com/cottand/casesplit/proof"
	"github.com/cottand/casesplit/term"
)

type entry struct {
	value bool
	// proof proves `t = True` or `t = False`
	proof term.Term
}

// Conflict records a term that was asserted both True and False
type Conflict struct {
	Term       term.Term
	TrueProof  term.Term
	FalseProof term.Term
}

type Store struct {
	facts    *immutable.Map[term.Term, entry]
	conflict *Conflict
}

func New() *Store {
	return &Store{facts: immutable.NewMap[term.Term, entry](term.Hasher{})}
}

func (s *Store) lookup(t term.Term) (entry, bool) {
	switch {
	case term.IsConst(t, term.NameTrue):
		return entry{value: true, proof: proof.MkEqTrue(term.True, term.Const{Name: proof.TrueIntro})}, true
	case term.IsConst(t, term.NameFalse):
		return entry{value: false, proof: proof.MkEqFalse(term.False, term.Const{Name: proof.NotFalse})}, true
	}
	return s.facts.Get(t)
}

func (s *Store) IsEqTrue(t term.Term) bool {
	e, ok := s.lookup(t)
	return ok && e.value
}

func (s *Store) IsEqFalse(t term.Term) bool {
	e, ok := s.lookup(t)
	return ok && !e.value
}

// EqTrueProof returns a proof of t = True
func (s *Store) EqTrueProof(t term.Term) (term.Term, error) {
	e, ok := s.lookup(t)
	if !ok || !e.value {
		return nil, fmt.Errorf("%v is not known to be True", t)
	}
	return e.proof, nil
}

// EqFalseProof returns a proof of t = False
func (s *Store) EqFalseProof(t term.Term) (term.Term, error) {
	e, ok := s.lookup(t)
	if !ok || e.value {
		return nil, fmt.Errorf("%v is not known to be False", t)
	}
	return e.proof, nil
}

// Inconsistent reports whether some term was asserted both True and False,
// in which case the goal this store belongs to is closed
func (s *Store) Inconsistent() bool { return s.conflict != nil }

func (s *Store) Conflict() (Conflict, bool) {
	if s.conflict == nil {
		return Conflict{}, false
	}
	return *s.conflict, true
}

func (s *Store) Len() int { return s.facts.Len() }

// Assert returns a new store where t = value holds, justified by prf
func (s *Store) Assert(t term.Term, value bool, prf term.Term) *Store {
	next := &Store{facts: s.facts, conflict: s.conflict}
	next.assert(t, value, prf)
	return next
}

func (s *Store) assert(t term.Term, value bool, prf term.Term) {
	if s.conflict != nil {
		return
	}
	if known, ok := s.lookup(t); ok {
		if known.value != value {
			s.conflict = &Conflict{Term: t}
			s.conflict.TrueProof, s.conflict.FalseProof = known.proof, prf
			if value {
				s.conflict.TrueProof, s.conflict.FalseProof = prf, known.proof
			}
		}
		return
	}
	s.facts = s.facts.Set(t, entry{value: value, proof: prf})

	if p, ok := term.Unary(t, term.NameNot); ok {
		if value {
			s.assert(p, false, proof.MkEqFalse(p, proof.MkOfEqTrue(t, prf)))
		} else {
			s.assert(p, true, proof.Apply(proof.OfNotEqFalse, p, prf))
		}
		return
	}
	if p, q, ok := term.Binary(t, term.NameAnd); ok && value {
		conj := proof.MkOfEqTrue(t, prf)
		s.assert(p, true, proof.MkEqTrue(p, proof.MkAndLeft(p, q, conj)))
		s.assert(q, true, proof.MkEqTrue(q, proof.MkAndRight(p, q, conj)))
		return
	}
	if p, q, ok := term.Binary(t, term.NameOr); ok && !value {
		neg := proof.MkOfEqFalse(t, prf)
		s.assert(p, false, proof.MkEqFalse(p, proof.MkNotOrLeft(p, q, neg)))
		s.assert(q, false, proof.MkEqFalse(q, proof.MkNotOrRight(p, q, neg)))
	}
}

// All iterates over every fact in the store as the proposition it states
func (s *Store) All(yield func(prop term.Term, prf term.Term) bool) {
	itr := s.facts.Iterator()
	for !itr.Done() {
		t, e, _ := itr.Next()
		if !yield(term.Truth(t, e.value), e.proof) {
			return
		}
	}
}
