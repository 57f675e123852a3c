package goal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cottand/casesplit/failed"
	"github.com/cottand/casesplit/proof"
	"github.com/cottand/casesplit/term"
)

func hyp(name string, prop term.Term) proof.Hypothesis {
	h := proof.Hypothesis{Name: name, Prop: prop}
	h.Proof = h.FVar()
	return h
}

func TestNewAssertsHypotheses(t *testing.T) {
	g, err := New(NewState(), hyp("h1", term.EqFalse(p)), hyp("h2", term.And(q, term.Eq(x, y))))
	require.NoError(t, err)

	assert.True(t, g.Facts.IsEqFalse(p))
	assert.True(t, g.Facts.IsEqTrue(q))
	assert.True(t, g.Facts.IsEqTrue(term.Eq(x, y)))
	assert.False(t, g.Closed())

	assert.True(t, g.State.HasGeneration(term.FVar{Name: "h1"}))
	assert.Equal(t, uint(0), g.State.Generation(term.FVar{Name: "h2"}))

	prf, err := g.Facts.EqTrueProof(q)
	require.NoError(t, err)
	assert.NoError(t, proof.Check(g.Context(), prf, term.EqTrue(q)))
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := New(NewState(), hyp("h", p), hyp("h", q))
	assert.Error(t, err)
}

func TestContradictoryHypothesesCloseGoal(t *testing.T) {
	g, err := New(NewState(), hyp("h1", p), hyp("h2", term.Not(p)))
	require.NoError(t, err)

	assert.True(t, g.Closed())
}

func TestIntroduceOneChildPerCase(t *testing.T) {
	parent, err := New(NewState(term.Ite(p, x, y)), hyp("h0", q))
	require.NoError(t, err)
	parent.State.SplitCount = 1

	split := proof.Split{
		Term:        term.Ite(p, x, y),
		Major:       proof.MkEm(p),
		Disjunction: term.Or(p, term.Not(p)),
	}
	for i, prop := range []term.Term{p, term.Not(p)} {
		binder := hyp(parent.State.Fresh("c"), prop)
		split.Cases = append(split.Cases, proof.Case{
			Binder: binder,
			Hyps: []proof.Hypothesis{{
				Name:  parent.State.Fresh("h"),
				Prop:  term.Truth(p, i == 0),
				Proof: proof.MkTruth(p, binder.FVar(), i == 0),
			}},
		})
	}

	children, err := Introducer{}.Introduce(parent, split)
	require.NoError(t, err)
	require.Len(t, children, 2)

	assert.True(t, children[0].Facts.IsEqTrue(p))
	assert.True(t, children[1].Facts.IsEqFalse(p))
	for _, child := range children {
		assert.Same(t, parent, child.Parent)
		assert.Equal(t, 1, child.Depth)
		assert.Len(t, child.Hyps, 3)
		assert.Equal(t, uint(1), child.State.SplitCount)
		assert.Equal(t, uint(1), child.State.Generation(child.Hyps[2].FVar()))
		assert.Equal(t, uint(0), child.State.Generation(term.FVar{Name: "h0"}))
		assert.NotEqual(t, parent.ID, child.ID)
		for _, h := range child.Hyps {
			assert.NoError(t, proof.Check(child.Context(), h.Proof, h.Prop), h.Name)
		}
	}
	assert.Len(t, parent.Hyps, 1)
	assert.False(t, parent.Facts.IsEqTrue(p))
}

func TestIntroduceRecordsFirstAppearances(t *testing.T) {
	ite := term.Ite(term.Eq(x, y), p, q)
	parent, err := New(NewState(ite), hyp("h0", term.Not(term.Eq(x, term.Lit{Value: 0}))))
	require.NoError(t, err)
	assert.Equal(t, uint(0), parent.State.Generation(x))
	assert.True(t, parent.State.HasGeneration(ite))
	assert.False(t, parent.State.HasGeneration(y))

	binder := hyp("c", term.Eq(x, y))
	children, err := Introducer{}.Introduce(parent, proof.Split{Cases: []proof.Case{{Binder: binder}}})
	require.NoError(t, err)
	require.Len(t, children, 1)
	child := children[0]

	assert.Equal(t, uint(0), child.State.Generation(x), "x was already part of the goal")
	assert.Equal(t, uint(1), child.State.Generation(y))
	assert.Equal(t, uint(0), child.State.MinGeneration(ite))
	assert.False(t, parent.State.HasGeneration(y))
}

func TestQueue(t *testing.T) {
	or := term.Or(x, y)
	g, err := New(NewState(or))
	require.NoError(t, err)
	g.Depth = 2

	g.Queue(or)
	g.Queue(term.Not(x))

	assert.Equal(t, []term.Term{or, term.Not(x)}, g.State.Pending)
	assert.Equal(t, uint(2), g.State.Generation(or))
	assert.Equal(t, uint(2), g.State.Generation(term.Not(x)))
}

func TestIntroduceRejectsClashingNames(t *testing.T) {
	parent, err := New(NewState(), hyp("h", q))
	require.NoError(t, err)

	split := proof.Split{Cases: []proof.Case{{Binder: hyp("h", p)}, {Binder: hyp("k", term.Not(p))}}}
	_, err = Introducer{}.Introduce(parent, split)

	assert.Error(t, err)
}

func TestBudget(t *testing.T) {
	g, err := New(NewState())
	require.NoError(t, err)
	budget := Budget{Max: 2}

	g.State.SplitCount = 1
	assert.NoError(t, budget.CheckSplitBudget(g))

	g.State.SplitCount = 2
	err = budget.CheckSplitBudget(g)
	assert.Equal(t, failed.LimitExceeded, failed.CodeOf(err))
	assert.True(t, failed.IsLimitExceeded(err))
}
