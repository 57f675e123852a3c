package split

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/cottand/casesplit/goal"
)

const tracerName = "github.com/cottand/casesplit/split"

type tracer struct {
	tracer  trace.Tracer
	enabled bool
}

func newTracer(enabled bool) *tracer {
	return &tracer{tracer: otel.Tracer(tracerName), enabled: enabled}
}

// start returns a noop span when tracing is disabled
func (t *tracer) start(ctx context.Context, g *goal.Goal) (context.Context, trace.Span) {
	if !t.enabled {
		return ctx, noop.Span{}
	}
	return t.tracer.Start(ctx, "casesplit.perform",
		trace.WithAttributes(
			attribute.String("casesplit.goal", g.ID.String()),
			attribute.Int("casesplit.depth", g.Depth),
			attribute.Int("casesplit.split_count", int(g.State.SplitCount)),
			attribute.Int("casesplit.pending", len(g.State.Pending)),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (t *tracer) end(span trace.Span, outcome Outcome, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		return
	}
	if !outcome.Done() {
		span.SetAttributes(
			attribute.String("casesplit.term", outcome.Candidate.Term.String()),
			attribute.String("casesplit.status", outcome.Candidate.Status.String()),
			attribute.Int("casesplit.cases", len(outcome.Goals)),
		)
	}
	span.SetStatus(codes.Ok, "")
	span.End()
}
