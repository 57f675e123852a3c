package term

import (
	"context"
	"fmt"
	"log/slog"
)

// slogTerm wraps a Term as a slog.LogValuer to not render term strings
// unless they definitely need to be logged
func slogTerm(t Term) slog.LogValuer {
	return termLogValuer{t}
}

type termLogValuer struct{ Term }

func (l termLogValuer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("str", l.String()),
		slog.String("hash", fmt.Sprintf("%x", l.Hash())),
	)
}

// SlogHandler wraps underlying so that Term attributes are printed lazily
func SlogHandler(underlying slog.Handler) slog.Handler {
	return &termLogHandler{underlying: underlying}
}

type termLogHandler struct {
	underlying slog.Handler
}

func (l *termLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return l.underlying.Enabled(ctx, level)
}

func (l *termLogHandler) Handle(ctx context.Context, record slog.Record) error {
	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		newRecord.AddAttrs(wrapAttr(attr))
		return true
	})
	return l.underlying.Handle(ctx, newRecord)
}

func (l *termLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	wrapped := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		wrapped[i] = wrapAttr(attr)
	}
	return SlogHandler(l.underlying.WithAttrs(wrapped))
}

func (l *termLogHandler) WithGroup(name string) slog.Handler {
	return SlogHandler(l.underlying.WithGroup(name))
}

func wrapAttr(attr slog.Attr) slog.Attr {
	if attr.Value.Kind() != slog.KindAny {
		return attr
	}
	if t, ok := attr.Value.Any().(Term); ok {
		return slog.Any(attr.Key, slogTerm(t))
	}
	return attr
}
