package proof

import (
	"fmt"
	"maps"

	"github.com/cottand/casesplit/term"
)

// Context maps hypothesis names to the propositions they prove
type Context map[string]term.Term

// With returns a copy of ctx extended with name : prop
func (ctx Context) With(name string, prop term.Term) Context {
	extended := make(Context, len(ctx)+1)
	maps.Copy(extended, ctx)
	extended[name] = prop
	return extended
}

type CheckError struct {
	Proof   term.Term
	Message string
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("ill-formed proof %v: %s", e.Proof, e.Message)
}

func errorf(prf term.Term, format string, args ...any) error {
	return &CheckError{Proof: prf, Message: fmt.Sprintf(format, args...)}
}

// Infer returns the proposition proved by prf under ctx
func Infer(ctx Context, prf term.Term) (term.Term, error) {
	switch p := term.StripMData(prf).(type) {
	case term.FVar:
		prop, ok := ctx[p.Name]
		if !ok {
			return nil, errorf(prf, "unknown hypothesis %s", p.Name)
		}
		return prop, nil
	case term.Const, *term.App:
		return inferLemma(ctx, prf)
	default:
		return nil, errorf(prf, "not a proof term")
	}
}

func inferLemma(ctx Context, prf term.Term) (term.Term, error) {
	head, ok := term.AppFn(prf).(term.Const)
	if !ok {
		return nil, errorf(prf, "head is not a lemma")
	}
	l, ok := catalog[head.Name]
	if !ok {
		return nil, errorf(prf, "unknown lemma %s", head.Name)
	}
	args := term.AppArgs(prf)
	if len(args) < l.params {
		return nil, errorf(prf, "%s expects %d parameters, got %d", head.Name, l.params, len(args))
	}
	params, proofs := args[:l.params], args[l.params:]
	premises := l.premises(params)
	if len(proofs) != len(premises) {
		return nil, errorf(prf, "%s expects %d premises, got %d", head.Name, len(premises), len(proofs))
	}
	for i, premise := range premises {
		got, err := Infer(ctx, proofs[i])
		if err != nil {
			return nil, err
		}
		if !term.Equal(got, premise) {
			return nil, errorf(prf, "premise %d of %s should prove %v, but proves %v", i, head.Name, premise, got)
		}
	}
	return l.conclusion(params), nil
}

// Check verifies that prf proves prop under ctx
func Check(ctx Context, prf, prop term.Term) error {
	got, err := Infer(ctx, prf)
	if err != nil {
		return err
	}
	if !term.Equal(got, prop) {
		return errorf(prf, "proves %v, expected %v", got, prop)
	}
	return nil
}

// IsTrusted reports whether prf is an elimination principle produced by the environment
func IsTrusted(prf term.Term) bool {
	return term.IsConst(term.AppFn(prf), CasesOn)
}

// CheckSplit verifies every proof inside s under ctx, which should hold the goal's hypotheses:
//   - Major proves Disjunction (unless Major is trusted)
//   - every Case's Binder assumes the corresponding disjunct
//   - every hypothesis of a Case is proved from the goal's hypotheses and its Binder
func CheckSplit(ctx Context, s Split) error {
	if len(s.Cases) < 2 {
		return errorf(s.Major, "a split needs at least two cases, got %d", len(s.Cases))
	}
	if !IsTrusted(s.Major) {
		if err := Check(ctx, s.Major, s.Disjunction); err != nil {
			return err
		}
	}
	ds, ok := disjuncts(s.Disjunction, len(s.Cases))
	if !ok {
		return errorf(s.Major, "%v is not a disjunction of %d cases", s.Disjunction, len(s.Cases))
	}
	for i, c := range s.Cases {
		if !term.Equal(c.Binder.Prop, ds[i]) {
			return errorf(s.Major, "case %d assumes %v, expected %v", i, c.Binder.Prop, ds[i])
		}
		branchCtx := ctx.With(c.Binder.Name, c.Binder.Prop)
		for _, h := range c.Hyps {
			if err := Check(branchCtx, h.Proof, h.Prop); err != nil {
				return fmt.Errorf("case %d, hypothesis %s: %w", i, h.Name, err)
			}
		}
	}
	return nil
}
