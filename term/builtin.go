package term

// names of the logical constants the engine knows about
const (
	NameTrue  = "True"
	NameFalse = "False"
	NameNot   = "Not"
	NameAnd   = "And"
	NameOr    = "Or"
	NameIff   = "Iff"
	NameEq    = "Eq"
	NameIte   = "ite"
	NameDite  = "dite"
)

var (
	True  Term = Const{Name: NameTrue}
	False Term = Const{Name: NameFalse}
)

func Not(p Term) Term       { return Apps(Const{Name: NameNot}, p) }
func And(p, q Term) Term    { return Apps(Const{Name: NameAnd}, p, q) }
func Or(p, q Term) Term     { return Apps(Const{Name: NameOr}, p, q) }
func Iff(p, q Term) Term    { return Apps(Const{Name: NameIff}, p, q) }
func Eq(a, b Term) Term     { return Apps(Const{Name: NameEq}, a, b) }
func Ite(c, t, e Term) Term { return Apps(Const{Name: NameIte}, c, t, e) }

// Dite is the dependent if-then-else. The branches are expected to be
// functions of the condition's proof, but the engine only ever looks at c.
func Dite(c, t, e Term) Term { return Apps(Const{Name: NameDite}, c, t, e) }

// EqTrue builds p = True
func EqTrue(p Term) Term { return Eq(p, True) }

// EqFalse builds p = False
func EqFalse(p Term) Term { return Eq(p, False) }

// Truth builds p = True or p = False
func Truth(p Term, value bool) Term {
	if value {
		return EqTrue(p)
	}
	return EqFalse(p)
}

// Binary matches t against `name a b`
func Binary(t Term, name string) (a, b Term, ok bool) {
	args := AppArgs(t)
	if len(args) != 2 || !IsConst(AppFn(t), name) {
		return nil, nil, false
	}
	return args[0], args[1], true
}

// Unary matches t against `name a`
func Unary(t Term, name string) (a Term, ok bool) {
	args := AppArgs(t)
	if len(args) != 1 || !IsConst(AppFn(t), name) {
		return nil, false
	}
	return args[0], true
}

// AsTruth matches t against p = True or p = False
func AsTruth(t Term) (p Term, value bool, ok bool) {
	lhs, rhs, ok := Binary(t, NameEq)
	if !ok {
		return nil, false, false
	}
	switch {
	case IsConst(rhs, NameTrue):
		return lhs, true, true
	case IsConst(rhs, NameFalse):
		return lhs, false, true
	default:
		return nil, false, false
	}
}
