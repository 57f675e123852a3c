package split

import (
	"slices"

	"github.com/cottand/casesplit/goal"
	"github.com/cottand/casesplit/internal/log"
	"github.com/cottand/casesplit/term"
)

var selectLogger = log.Section("split.select")

// Candidate is a pending term together with its classification
type Candidate struct {
	Term   term.Term
	Status Status
	// generation is the least generation of the hypotheses Term depends on
	generation uint
	// position is where Term was taken out of the pending list, or -1 if it stayed
	position int
}

// better reports whether c should be split before other:
// fewer cases first, then the candidate depending on newer hypotheses
func (c Candidate) better(other Candidate) bool {
	if c.Status.NumCases != other.Status.NumCases {
		return c.Status.NumCases < other.Status.NumCases
	}
	return c.generation > other.generation
}

// SelectNext scans the pending candidates of state once and picks the one to split next.
//
// Resolved candidates leave the pending list. The chosen Shaped candidate leaves it too,
// and everything else stays, in order. When there is no Shaped candidate, the first
// GenericBinary one is chosen and stays pending: once split it is Resolved in every case.
func SelectNext(c Classifier, state *goal.State) (Candidate, bool) {
	var (
		best    Candidate
		found   bool
		bestIdx int
		kept    []term.Term
	)
	for _, t := range state.Pending {
		status := c.Classify(t)
		if status.IsResolved() {
			selectLogger.Debug("dropping resolved candidate", "term", t)
			continue
		}
		kept = append(kept, t)
		if !status.IsShaped() {
			continue
		}
		candidate := Candidate{Term: t, Status: status, generation: state.MinGeneration(t)}
		if !found || candidate.better(best) {
			best, bestIdx, found = candidate, len(kept)-1, true
		}
	}

	if found {
		best.position = bestIdx
		state.Pending = slices.Delete(kept, bestIdx, bestIdx+1)
		selectLogger.Debug("selected candidate", "term", best.Term, "status", best.Status.String(), "pending", len(state.Pending))
		return best, true
	}
	state.Pending = kept
	if len(kept) == 0 {
		return Candidate{}, false
	}
	fallback := Candidate{Term: kept[0], Status: GenericBinary, generation: state.MinGeneration(kept[0]), position: -1}
	selectLogger.Debug("falling back to excluded middle", "term", fallback.Term, "pending", len(kept))
	return fallback, true
}

// requeue puts c back where SelectNext took it from
func requeue(state *goal.State, c Candidate) {
	if c.position < 0 {
		return
	}
	state.Pending = slices.Insert(state.Pending, min(c.position, len(state.Pending)), c.Term)
}
