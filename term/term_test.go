package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAppArgsAndFn(t *testing.T) {
	p, q := FVar{Name: "p"}, FVar{Name: "q"}
	conj := And(p, q)

	assert.True(t, IsConst(AppFn(conj), NameAnd))
	assert.Equal(t, []Term{p, q}, AppArgs(conj))
	assert.Equal(t, "(And p q)", conj.String())
}

func TestEqualIgnoresAnnotations(t *testing.T) {
	p, q := FVar{Name: "p"}, FVar{Name: "q"}

	annotated := &MData{Tag: "type", Inner: Or(p, q)}
	assert.True(t, Equal(annotated, Or(p, q)))
	assert.Equal(t, Or(p, q).Hash(), annotated.Hash())
	assert.False(t, Equal(Or(p, q), Or(q, p)))
	assert.False(t, Equal(Const{Name: "p"}, p))
}

func TestPeel(t *testing.T) {
	c, a, b := FVar{Name: "c"}, Lit{Value: 1}, Lit{Value: 2}
	ite := Ite(c, a, b)

	fn, last, ok := Peel(ite)
	require.True(t, ok)
	assert.True(t, Equal(last, b))
	fn, _, ok = Peel(fn)
	require.True(t, ok)
	fn, cond, ok := Peel(fn)
	require.True(t, ok)
	assert.True(t, Equal(cond, c))
	assert.True(t, IsConst(fn, NameIte))

	_, _, ok = Peel(c)
	assert.False(t, ok)
}

func TestAsTruth(t *testing.T) {
	p := FVar{Name: "p"}

	got, value, ok := AsTruth(EqFalse(p))
	require.True(t, ok)
	assert.False(t, value)
	assert.True(t, Equal(p, got))

	_, _, ok = AsTruth(Eq(p, Lit{Value: 3}))
	assert.False(t, ok)
}

func TestFreeVarNames(t *testing.T) {
	x, y := FVar{Name: "x"}, FVar{Name: "y"}
	term := And(Eq(y, Lit{Value: 0}), Or(x, Not(y)))

	assert.Equal(t, []string{"x", "y"}, FreeVarNames(term))
	assert.Equal(t, []string{"x", "y"}, FreeVarNames(x, y, term))
	assert.Empty(t, FreeVarNames(True))
	assert.Equal(t, 2, FreeVars(term).Size())
}

func TestSyntaxRoundTrip(t *testing.T) {
	src := `[ite, [Eq, $x, 0], a, [f, $y]]`

	var s Syntax
	require.NoError(t, yaml.Unmarshal([]byte(src), &s))
	expected := Ite(Eq(FVar{Name: "x"}, Lit{Value: 0}), Const{Name: "a"}, Apps(Const{Name: "f"}, FVar{Name: "y"}))
	assert.True(t, Equal(expected, s.Term), "got %v", s.Term)

	out, err := yaml.Marshal(s)
	require.NoError(t, err)
	var again Syntax
	require.NoError(t, yaml.Unmarshal(out, &again))
	assert.True(t, Equal(expected, again.Term))
}

func TestSyntaxRejectsMappings(t *testing.T) {
	var s Syntax
	err := yaml.Unmarshal([]byte(`{a: b}`), &s)
	assert.Error(t, err)

	err = yaml.Unmarshal([]byte(`[]`), &s)
	assert.Error(t, err)
}
