package split

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cottand/casesplit/goal"
	"github.com/cottand/casesplit/term"
)

func TestSelectFewerCasesWins(t *testing.T) {
	c := Classifier{Facts: testFacts(), Env: testEnv(t), Shapes: AllShapes()}
	threeCases, twoCases := matchOn(x), term.Ite(r, y, y)

	for name, pending := range map[string][]term.Term{
		"three first": {threeCases, twoCases},
		"two first":   {twoCases, threeCases},
	} {
		t.Run(name, func(t *testing.T) {
			state := goal.NewState(pending...)
			// the three-case candidate depends on newer hypotheses, which must not matter
			state.SetGeneration(x, 10)

			chosen, ok := SelectNext(c, state)
			require.True(t, ok)
			assert.Equal(t, twoCases, chosen.Term)
			assert.Equal(t, Shaped(2, false), chosen.Status)
			assert.Equal(t, []term.Term{threeCases}, state.Pending)
		})
	}
}

func TestSelectNewerGenerationBreaksTies(t *testing.T) {
	c := Classifier{Facts: testFacts(), Env: testEnv(t), Shapes: AllShapes()}
	older := term.Ite(term.Eq(x, x), r, s)
	newer := term.Or(term.Eq(y, y), r)

	for name, pending := range map[string][]term.Term{
		"older first": {older, newer},
		"newer first": {newer, older},
	} {
		t.Run(name, func(t *testing.T) {
			state := goal.NewState(pending...)
			state.SetGeneration(x, 3)
			state.SetGeneration(y, 5)

			chosen, ok := SelectNext(c, state)
			require.True(t, ok)
			assert.Equal(t, newer, chosen.Term)
			assert.Equal(t, []term.Term{older}, state.Pending)
		})
	}
}

func TestSelectFullTieKeepsEarliest(t *testing.T) {
	c := Classifier{Facts: testFacts(), Env: testEnv(t), Shapes: AllShapes()}
	first, second := term.Ite(r, x, y), term.And(r, s)
	state := goal.NewState(first, second)

	chosen, ok := SelectNext(c, state)
	require.True(t, ok)
	assert.Equal(t, first, chosen.Term)
	assert.Equal(t, []term.Term{second}, state.Pending)
}

func TestSelectDropsResolvedAndKeepsTheRest(t *testing.T) {
	c := Classifier{Facts: testFacts(), Env: testEnv(t), Shapes: AllShapes()}
	generic := term.Eq(x, y)
	resolved := term.And(q, r)
	chosen := term.Ite(r, x, y)
	loser := matchOn(x)
	state := goal.NewState(generic, resolved, p, chosen, loser)

	candidate, ok := SelectNext(c, state)
	require.True(t, ok)
	assert.Equal(t, chosen, candidate.Term)
	assert.Equal(t, []term.Term{generic, loser}, state.Pending)
}

func TestSelectRequeuesGenericCandidates(t *testing.T) {
	c := Classifier{Facts: testFacts(), Env: testEnv(t), Shapes: AllShapes()}
	pending := []term.Term{r, term.Eq(x, y), term.Not(s), term.Apps(term.Const{Name: "f"}, x)}
	state := goal.NewState(pending...)

	for scan := range 2 {
		chosen, ok := SelectNext(c, state)
		require.True(t, ok, "scan %d", scan)
		assert.Equal(t, r, chosen.Term)
		assert.True(t, chosen.Status.IsGenericBinary())
		assert.ElementsMatch(t, pending, state.Pending)
	}
}

func TestRequeueRestoresScanPosition(t *testing.T) {
	c := Classifier{Facts: testFacts(), Env: testEnv(t), Shapes: AllShapes()}
	ite := term.Ite(r, x, y)

	tests := map[string]struct {
		pending  []term.Term
		expected []term.Term
	}{
		"shaped in the middle": {
			pending:  []term.Term{matchOn(x), term.And(q, s), ite, r},
			expected: []term.Term{matchOn(x), ite, r},
		},
		"shaped last":   {pending: []term.Term{r, ite}, expected: []term.Term{r, ite}},
		"generic stays": {pending: []term.Term{r, s}, expected: []term.Term{r, s}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			state := goal.NewState(tt.pending...)
			candidate, ok := SelectNext(c, state)
			require.True(t, ok)

			requeue(state, candidate)
			assert.Equal(t, tt.expected, state.Pending)
		})
	}
}

func TestSelectEmpty(t *testing.T) {
	c := Classifier{Facts: testFacts(), Env: testEnv(t), Shapes: AllShapes()}

	_, ok := SelectNext(c, goal.NewState())
	assert.False(t, ok)

	state := goal.NewState(p, q, term.And(q, r))
	_, ok = SelectNext(c, state)
	assert.False(t, ok)
	assert.Empty(t, state.Pending)
}

func TestSelectNeverExceedsMinimumCases(t *testing.T) {
	c := Classifier{Facts: testFacts(), Env: testEnv(t), Shapes: AllShapes()}
	pool := []term.Term{matchOn(x), even(y), term.Iff(r, s), matchOn(y), term.Ite(s, x, y), even(x), r}

	for i := range pool {
		pending := slices.Concat(pool[i:], pool[:i])
		chosen, ok := SelectNext(c, goal.NewState(pending...))
		require.True(t, ok)
		assert.Equal(t, 2, chosen.Status.NumCases, "rotation %d chose %v", i, chosen.Term)
	}
}
