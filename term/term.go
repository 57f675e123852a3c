// Package term holds the immutable expression nodes the case-split engine reasons about.
//
// Terms are structurally shared and never mutated once built. Two terms are the same
// term when Equal says so; Hash is consistent with Equal.
package term

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

type Term interface {
	fmt.Stringer
	Hash() uint64
	termNode()
}

var (
	_ Term = Const{}
	_ Term = FVar{}
	_ Term = Lit{}
	_ Term = (*App)(nil)
	_ Term = (*MData)(nil)
)

// Const is a global constant: a connective, a lemma, a constructor or a predicate name.
type Const struct {
	Name string
}

// FVar is a free variable of the goal. Hypotheses are FVars too.
type FVar struct {
	Name string
}

// Lit is a natural-number literal
type Lit struct {
	Value int64
}

// App is the application of Fn to a single argument.
// Use Apps or NewApp to build one, so that the hash gets cached.
type App struct {
	Fn, Arg Term
	hash    uint64
}

// MData wraps a term with an annotation (a type ascription, a proof marker...)
// that has no logical meaning.
type MData struct {
	Tag   string
	Inner Term
}

func (Const) termNode()  {}
func (FVar) termNode()   {}
func (Lit) termNode()    {}
func (*App) termNode()   {}
func (*MData) termNode() {}

func hashString(kind byte, s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte{kind})
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

func (t Const) Hash() uint64 { return hashString('c', t.Name) }
func (t FVar) Hash() uint64  { return hashString('v', t.Name) }
func (t Lit) Hash() uint64   { return 1099511628211 ^ uint64(t.Value)*16777619 }

func (t *App) Hash() uint64 {
	if t.hash == 0 {
		t.hash = 2166136261*16777619 ^ (t.Fn.Hash()*31 + t.Arg.Hash()*37)
	}
	return t.hash
}

// Hash of MData is the hash of the inner term, as annotations are not part of a term's identity
func (t *MData) Hash() uint64 { return t.Inner.Hash() }

func (t Const) String() string { return t.Name }
func (t FVar) String() string  { return t.Name }
func (t Lit) String() string   { return strconv.FormatInt(t.Value, 10) }
func (t *MData) String() string {
	return t.Inner.String()
}

func (t *App) String() string {
	sb := &strings.Builder{}
	sb.WriteString("(")
	sb.WriteString(AppFn(t).String())
	for _, arg := range AppArgs(t) {
		sb.WriteString(" ")
		sb.WriteString(arg.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// NewApp builds a single application node
func NewApp(fn, arg Term) *App {
	app := &App{Fn: fn, Arg: arg}
	app.Hash()
	return app
}

// Apps builds the curried application fn args[0] ... args[n-1]
func Apps(fn Term, args ...Term) Term {
	for _, arg := range args {
		fn = NewApp(fn, arg)
	}
	return fn
}

// StripMData removes any annotations wrapping t
func StripMData(t Term) Term {
	for {
		m, ok := t.(*MData)
		if !ok {
			return t
		}
		t = m.Inner
	}
}

// AppFn returns the head of a (possibly nested) application
func AppFn(t Term) Term {
	t = StripMData(t)
	for {
		app, ok := t.(*App)
		if !ok {
			return t
		}
		t = StripMData(app.Fn)
	}
}

// AppArgs returns the arguments of a (possibly nested) application, in order
func AppArgs(t Term) []Term {
	var args []Term
	t = StripMData(t)
	for {
		app, ok := t.(*App)
		if !ok {
			break
		}
		args = append(args, app.Arg)
		t = StripMData(app.Fn)
	}
	for i, j := 0, len(args)-1; i < j; i, j = i+1, j-1 {
		args[i], args[j] = args[j], args[i]
	}
	return args
}

// Peel splits an application into its function and its last argument.
// ok is false when t is not an application.
func Peel(t Term) (fn Term, arg Term, ok bool) {
	app, ok := StripMData(t).(*App)
	if !ok {
		return nil, nil, false
	}
	return StripMData(app.Fn), app.Arg, true
}

// Hasher keys immutable maps by term, resolving hash collisions with Equal
type Hasher struct{}

func (Hasher) Hash(key Term) uint32 {
	h := key.Hash()
	return uint32(h ^ h>>32)
}

func (Hasher) Equal(a, b Term) bool { return Equal(a, b) }

// Equal is structural equality modulo annotations
func Equal(a, b Term) bool {
	a, b = StripMData(a), StripMData(b)
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Hash() != b.Hash() {
		return false
	}
	switch a := a.(type) {
	case Const, FVar, Lit:
		return a == b
	case *App:
		other, ok := b.(*App)
		return ok && Equal(a.Fn, other.Fn) && Equal(a.Arg, other.Arg)
	default:
		return false
	}
}

// IsConst reports whether t is the constant called name
func IsConst(t Term, name string) bool {
	c, ok := StripMData(t).(Const)
	return ok && c.Name == name
}
