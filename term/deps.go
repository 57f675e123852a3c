package term

import (
	"sort"

	set "github.com/hashicorp/go-set/v3"
	xset "github.com/xtgo/set"
)

// FreeVars collects the free variables t depends on
func FreeVars(t Term) *set.HashSet[Term, uint64] {
	found := set.NewHashSet[Term, uint64](4)
	collectFreeVars(t, found)
	return found
}

func collectFreeVars(t Term, into *set.HashSet[Term, uint64]) {
	switch t := t.(type) {
	case FVar:
		into.Insert(t)
	case *App:
		collectFreeVars(t.Fn, into)
		collectFreeVars(t.Arg, into)
	case *MData:
		collectFreeVars(t.Inner, into)
	}
}

// FreeVarNames returns the sorted, de-duplicated names of the free variables of ts
func FreeVarNames(ts ...Term) []string {
	var names []string
	for _, t := range ts {
		for v := range FreeVars(t).Items() {
			names = append(names, v.(FVar).Name)
		}
	}
	sort.Strings(names)
	n := xset.Uniq(sort.StringSlice(names))
	return names[:n]
}
