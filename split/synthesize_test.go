package split

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cottand/casesplit/facts"
	"github.com/cottand/casesplit/goal"
	"github.com/cottand/casesplit/proof"
	"github.com/cottand/casesplit/term"
)

// constFacts knows every term to have the same value, proved by the hypothesis "fact"
type constFacts bool

func (f constFacts) IsEqTrue(term.Term) bool  { return bool(f) }
func (f constFacts) IsEqFalse(term.Term) bool { return !bool(f) }

func (f constFacts) EqTrueProof(t term.Term) (term.Term, error) {
	if !f {
		return nil, fmt.Errorf("%v is false", t)
	}
	return term.FVar{Name: "fact"}, nil
}

func (f constFacts) EqFalseProof(t term.Term) (term.Term, error) {
	if f {
		return nil, fmt.Errorf("%v is true", t)
	}
	return term.FVar{Name: "fact"}, nil
}

// context is what a goal knowing facts about t would have as hypotheses
func (f constFacts) context(t term.Term) proof.Context {
	return proof.Context{"fact": term.Truth(term.StripMData(t), bool(f))}
}

func TestSynthesizedSplitsAreSound(t *testing.T) {
	tests := map[string]struct {
		facts  FactStore
		ctx    proof.Context
		term   term.Term
		status Status
		major  string
		// the terms the cases assign a truth value to
		assigns []term.Term
	}{
		"false conjunction": {
			facts: constFacts(false), ctx: constFacts(false).context(term.And(r, s)),
			term: term.And(r, s), status: Shaped(2, true),
			major: proof.OrOfAndEqFalse, assigns: []term.Term{r, s},
		},
		"undecided conjunction": {
			facts: facts.New(), term: term.And(r, s), status: Shaped(2, true),
			major: proof.Em, assigns: []term.Term{r},
		},
		"true disjunction": {
			facts: constFacts(true), term: term.Or(r, s), status: Shaped(2, true),
			major: proof.Em, assigns: []term.Term{r},
		},
		"false disjunction": {
			facts: constFacts(false), term: term.Or(r, s), status: Shaped(2, true),
			major: proof.Em, assigns: []term.Term{r},
		},
		"true bi-implication": {
			facts: constFacts(true), ctx: constFacts(true).context(term.Iff(r, s)),
			term: term.Iff(r, s), status: Shaped(2, true),
			major: proof.OfEqEqTrue, assigns: []term.Term{r, s},
		},
		"false bi-implication": {
			facts: constFacts(false), ctx: constFacts(false).context(term.Iff(r, s)),
			term: term.Iff(r, s), status: Shaped(2, true),
			major: proof.OfEqEqFalse, assigns: []term.Term{r, s},
		},
		"undecided bi-implication": {
			facts: facts.New(), term: term.Iff(r, s), status: Shaped(2, true),
			major: proof.Em, assigns: []term.Term{r},
		},
		"ite, always true": {
			facts: constFacts(true), term: term.Ite(term.Eq(x, y), r, s), status: Shaped(2, false),
			major: proof.Em, assigns: []term.Term{term.Eq(x, y)},
		},
		"ite, always false": {
			facts: constFacts(false), term: term.Ite(r, x, y), status: Shaped(2, false),
			major: proof.Em, assigns: []term.Term{r},
		},
		"dite": {
			facts: facts.New(), term: term.Dite(r, x, y), status: Shaped(2, false),
			major: proof.Em, assigns: []term.Term{r},
		},
		"generic": {
			facts: facts.New(), term: term.Eq(x, y), status: GenericBinary,
			major: proof.Em, assigns: []term.Term{term.Eq(x, y)},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := tt.ctx
			if ctx == nil {
				ctx = proof.Context{}
			}
			synth := Synthesizer{Facts: tt.facts, Env: testEnv(t), Fresh: goal.NewState().Fresh}

			result, err := synth.Synthesize(Candidate{Term: tt.term, Status: tt.status})
			require.NoError(t, err)

			assert.True(t, term.IsConst(term.AppFn(result.Major), tt.major), "major premise %v", result.Major)
			require.NoError(t, proof.CheckSplit(ctx, result.Split))
			assert.True(t, proof.Exhaustive(result.Premises, result.Cases))
			require.Len(t, result.Cases, 2)
			var assigned []term.Term
			for i, c := range result.Cases {
				require.NotEmpty(t, c.Hyps, "case %d", i)
				for _, h := range c.Hyps {
					lhs, _, ok := term.AsTruth(h.Prop)
					require.True(t, ok, "case %d assumes %v", i, h.Prop)
					if !slices.ContainsFunc(assigned, func(a term.Term) bool { return term.Equal(a, lhs) }) {
						assigned = append(assigned, lhs)
					}
				}
			}
			assert.ElementsMatch(t, tt.assigns, assigned)
		})
	}
}

func TestSynthesizeFalseConjunctionNeedsItsPremise(t *testing.T) {
	synth := Synthesizer{Facts: constFacts(false), Env: testEnv(t), Fresh: goal.NewState().Fresh}
	result, err := synth.Synthesize(Candidate{Term: term.And(r, s), Status: Shaped(2, true)})
	require.NoError(t, err)

	assert.Equal(t, []term.Term{term.EqFalse(term.And(r, s))}, result.Premises)
	assert.False(t, proof.Exhaustive(nil, result.Cases))
	assert.Error(t, proof.CheckSplit(proof.Context{}, result.Split), "the proof of the conjunction being false is a hypothesis")
}

func TestSynthesizeBiImplicationAssignsBothSides(t *testing.T) {
	synth := Synthesizer{Facts: constFacts(false), Env: testEnv(t), Fresh: goal.NewState().Fresh}
	result, err := synth.Synthesize(Candidate{Term: term.Iff(r, s), Status: Shaped(2, true)})
	require.NoError(t, err)

	expected := [][]term.Term{
		{term.EqFalse(r), term.EqTrue(s)},
		{term.EqTrue(r), term.EqFalse(s)},
	}
	for i, c := range result.Cases {
		var props []term.Term
		for _, h := range c.Hyps {
			props = append(props, h.Prop)
		}
		assert.Equal(t, expected[i], props)
	}
}

func TestSynthesizeFollowups(t *testing.T) {
	known := facts.New().Assert(r, true, term.FVar{Name: "hr"})
	synth := Synthesizer{Facts: known, Env: testEnv(t), Fresh: goal.NewState().Fresh}

	tests := map[string]struct {
		term      term.Term
		splitOn   term.Term
		followups []term.Term
	}{
		"or splits on its first undecided side": {term.Or(r, s), s, []term.Term{term.Or(r, s)}},
		"and keeps itself pending":              {term.And(s, r), s, []term.Term{term.And(s, r)}},
		"iff leaves the other side":             {term.Iff(s, term.Eq(x, y)), s, []term.Term{term.Eq(x, y)}},
		"iff after a decided side":              {term.Iff(r, s), s, []term.Term{r}},
		"ite needs no followup":                 {term.Ite(s, x, y), s, nil},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result, err := synth.Synthesize(Candidate{Term: tt.term, Status: Shaped(2, true)})
			require.NoError(t, err)
			assert.Equal(t, proof.MkEm(tt.splitOn), result.Major)
			assert.Equal(t, tt.followups, result.Followups)
		})
	}
}

func TestSynthesizeDelegatesStructuralShapes(t *testing.T) {
	env := testEnv(t)
	synth := Synthesizer{Facts: facts.New(), Env: env, Fresh: goal.NewState().Fresh}

	for _, tt := range []struct {
		term  term.Term
		cases int
	}{
		{matchOn(x), 3},
		{even(y), 2},
	} {
		result, err := synth.Synthesize(Candidate{Term: tt.term, Status: Shaped(tt.cases, false)})
		require.NoError(t, err)
		assert.True(t, proof.IsTrusted(result.Major))
		assert.Len(t, result.Cases, tt.cases)
		assert.NoError(t, proof.CheckSplit(proof.Context{}, result.Split))
	}
}

func TestSynthesizeResolvedIsAnInvariantViolation(t *testing.T) {
	synth := Synthesizer{Facts: facts.New(), Env: testEnv(t), Fresh: goal.NewState().Fresh}
	_, err := synth.Synthesize(Candidate{Term: p, Status: Resolved})
	assert.Error(t, err)
}

func TestFreshHypothesisNames(t *testing.T) {
	synth := Synthesizer{Facts: facts.New(), Env: testEnv(t), Fresh: goal.NewState().Fresh}
	result, err := synth.Synthesize(Candidate{Term: term.Iff(r, s), Status: Shaped(2, true)})
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, c := range result.Cases {
		for _, h := range append(c.Hyps, c.Binder) {
			assert.False(t, seen[h.Name], "%s handed out twice", h.Name)
			seen[h.Name] = true
		}
	}
}
