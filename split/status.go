package split

import (
	"fmt"

	"github.com/cottand/casesplit/failed"
)

type statusKind uint8

const (
	resolved statusKind = iota
	genericBinary
	shaped
)

// Status is the classification of a split candidate.
// The zero value is Resolved.
type Status struct {
	kind statusKind
	// NumCases is the number of goals splitting on the candidate produces, always at least 2
	NumCases int
	// FromEquality is set when NumCases comes from a boolean connective rather than
	// from the structure of a matcher, inductive predicate or ite
	FromEquality bool
}

var (
	// Resolved candidates are already decided by the facts of the goal and are dropped
	Resolved = Status{kind: resolved}
	// GenericBinary candidates have no recognised shape; they stay pending and
	// are split by excluded middle when nothing better is available
	GenericBinary = Status{kind: genericBinary}
)

// Shaped is the status of a candidate with a known number of cases.
// It panics with an invariant violation if numCases < 2.
func Shaped(numCases int, fromEquality bool) Status {
	if numCases < 2 {
		panic(failed.Invariant("shaped candidate with %d cases", numCases))
	}
	return Status{kind: shaped, NumCases: numCases, FromEquality: fromEquality}
}

func (s Status) IsResolved() bool      { return s.kind == resolved }
func (s Status) IsGenericBinary() bool { return s.kind == genericBinary }
func (s Status) IsShaped() bool        { return s.kind == shaped }

func (s Status) String() string {
	switch s.kind {
	case resolved:
		return "resolved"
	case genericBinary:
		return "generic"
	default:
		return fmt.Sprintf("shaped(%d, eq=%t)", s.NumCases, s.FromEquality)
	}
}
