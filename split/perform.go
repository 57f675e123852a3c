// Package split decides which term a goal is split on next, and performs the split.
//
// A split goes through:
//   - SelectNext, which classifies every pending candidate and picks the best one
//   - Synthesizer.Synthesize, which builds the justified cases of the chosen candidate
//   - an Introducer, which turns every case into a new goal
//
// Engine.PerformSplit runs all three and keeps the goal's State consistent when one of them fails.
package split

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/cottand/casesplit/failed"
	"github.com/cottand/casesplit/goal"
	"github.com/cottand/casesplit/internal/log"
	"github.com/cottand/casesplit/proof"
	"github.com/cottand/casesplit/term"
)

type Options struct {
	Shapes Shapes
	// CheckProofs verifies every synthesized split before it is committed
	CheckProofs bool
	Tracing     bool
}

func DefaultOptions() Options {
	return Options{Shapes: AllShapes(), CheckProofs: true}
}

// Outcome is the result of a successful PerformSplit: either Done, when no
// candidate is left, or the goals of the performed split
type Outcome struct {
	Goals     []*goal.Goal
	Candidate Candidate
	Split     proof.Split
}

func (o Outcome) Done() bool { return len(o.Goals) == 0 }

type Engine struct {
	Env        Introspector
	Introducer Introducer
	Budget     Budget
	Options    Options

	logger *slog.Logger
	tracer *tracer
}

func NewEngine(env Introspector, introducer Introducer, budget Budget, opts Options) *Engine {
	return &Engine{
		Env:        env,
		Introducer: introducer,
		Budget:     budget,
		Options:    opts,
		logger:     log.Section("split"),
		tracer:     newTracer(opts.Tracing),
	}
}

func (e *Engine) Classifier(g *goal.Goal) Classifier {
	return Classifier{Facts: g.Facts, Env: e.Env, Shapes: e.Options.Shapes}
}

func (e *Engine) Synthesizer(g *goal.Goal) Synthesizer {
	return Synthesizer{Facts: g.Facts, Env: e.Env, Fresh: g.State.Fresh}
}

// PerformSplit splits g on its best pending candidate.
//
// The caller must not call it on a goal whose facts are inconsistent.
// On error, g.State is as it was before the call except for the Resolved candidates
// dropped by the scan. Exceeding the budget leaves g.State untouched.
func (e *Engine) PerformSplit(ctx context.Context, g *goal.Goal) (Outcome, error) {
	if err := e.Budget.CheckSplitBudget(g); err != nil {
		splitFailures.WithLabelValues(failed.CodeOf(err).String()).Inc()
		return Outcome{}, err
	}
	if err := ctx.Err(); err != nil {
		err = failed.New(failed.NewCancelled{Cause: err})
		splitFailures.WithLabelValues(failed.Cancelled.String()).Inc()
		return Outcome{}, err
	}

	ctx, span := e.tracer.start(ctx, g)
	state := g.State
	snapshot := state.Snapshot()

	candidate, ok := SelectNext(e.Classifier(g), state)
	if !ok {
		e.logger.DebugContext(ctx, "no candidate left", "goal", g.ID)
		e.tracer.end(span, Outcome{}, nil)
		return Outcome{}, nil
	}
	bumpGenerations(state, candidate.Term)

	synthesis, err := e.Synthesizer(g).Synthesize(candidate)
	if err == nil && e.Options.CheckProofs {
		err = verify(g, synthesis.Split)
	}
	if err != nil {
		rollback(state, snapshot, candidate)
		return e.fail(span, failed.New(failed.NewElaboration{Term: candidate.Term, Cause: err}))
	}

	state.SplitCount++
	goals, err := e.Introducer.Introduce(g, synthesis.Split)
	if err != nil {
		rollback(state, snapshot, candidate)
		return e.fail(span, failed.New(failed.NewIntroduction{Cause: err}))
	}
	for _, child := range goals {
		for _, followup := range synthesis.Followups {
			child.Queue(followup)
		}
	}

	outcome := Outcome{Goals: goals, Candidate: candidate, Split: synthesis.Split}
	shape := Decompose(e.Env, candidate.Term).Shape.String()
	if candidate.Status.IsGenericBinary() {
		shape = "generic"
	}
	splitsPerformed.WithLabelValues(shape).Inc()
	splitCases.Observe(float64(len(goals)))
	e.logger.DebugContext(ctx, "split performed",
		"goal", g.ID,
		"term", candidate.Term,
		"status", candidate.Status.String(),
		"cases", len(goals),
		"splits", state.SplitCount,
	)
	e.tracer.end(span, outcome, nil)
	return outcome, nil
}

func (e *Engine) fail(span trace.Span, err failed.SplitError) (Outcome, error) {
	splitFailures.WithLabelValues(err.Code().String()).Inc()
	e.logger.Warn("split failed", failed.LogAttr(err))
	e.tracer.end(span, Outcome{}, err)
	return Outcome{}, err
}

// rollback undoes a split that failed after SelectNext chose c
func rollback(state *goal.State, snapshot goal.Snapshot, c Candidate) {
	state.Restore(snapshot)
	requeue(state, c)
}

// bumpGenerations moves the free variables t depends on up to the generation t was
// queued at, when t was queued later than the oldest of them entered the goal
func bumpGenerations(state *goal.State, t term.Term) {
	if !state.HasGeneration(t) {
		return
	}
	own := state.Generation(t)
	if own <= state.MinGeneration(t) {
		return
	}
	for dep := range term.FreeVars(t).Items() {
		state.SetGeneration(dep, own)
	}
}

// verify checks the proofs of s under the hypotheses of g, and that its cases
// cover every possibility left by its premises
func verify(g *goal.Goal, s proof.Split) error {
	if err := proof.CheckSplit(g.Context(), s); err != nil {
		return err
	}
	if !proof.IsTrusted(s.Major) && !proof.Exhaustive(s.Premises, s.Cases) {
		return fmt.Errorf("cases of split on %v are not exhaustive", s.Term)
	}
	return nil
}
