package logs

import (
	"context"

	"github.com/google/uuid"
)

// NewSpan starts a span under parent, or under the span of ctx if parent is
// empty. The returned context carries the new span.
type NewSpan func(ctx context.Context, parent Span, name string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span, name string) (context.Context, Span) {

		// creator
		creatorSpan := SpanOf(ctx)
		if parent == "" {
			parent = creatorSpan
		}

		// span
		span := Span(uuid.NewString())
		ctx = context.WithValue(ctx, SpanKey, span)

		// logs
		args := []any{"name", name}
		if creatorSpan != "" && creatorSpan != parent {
			args = append(args, "creator", creatorSpan)
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.InfoContext(ctx, "new span", args...)

		return ctx, span
	}
}
