package trace

import "context"

// SpanContext identifies the span new work should attach to.
type SpanContext struct {
	SpanID uint64
}

type ctxKey struct{}

// binding is what a context carries: the tracer and the current span.
type binding struct {
	tracer Tracer
	span   SpanContext
}

func lookup(ctx context.Context) binding {
	if ctx != nil {
		if b, ok := ctx.Value(ctxKey{}).(binding); ok {
			return b
		}
	}
	return binding{tracer: Nop}
}

// FromContext returns the tracer of ctx or Nop.
func FromContext(ctx context.Context) Tracer {
	return lookup(ctx).tracer
}

// WithTracer attaches t to ctx; the current span is reset.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, ctxKey{}, binding{tracer: t})
}

// CurrentSpan returns the span set by WithSpanContext or StartSpan.
func CurrentSpan(ctx context.Context) SpanContext {
	return lookup(ctx).span
}

// WithSpanContext makes sc the parent of spans started from the result.
func WithSpanContext(ctx context.Context, sc SpanContext) context.Context {
	if ctx == nil {
		return nil
	}
	b := lookup(ctx)
	b.span = sc
	return context.WithValue(ctx, ctxKey{}, b)
}

// StartSpan begins a child of the current span of ctx and returns a context
// in which the new span is current.
func StartSpan(ctx context.Context, scope Scope, name string) (*Span, context.Context) {
	b := lookup(ctx)
	sp := Begin(b.tracer, scope, name, b.span.SpanID)
	if sp.ID() == 0 {
		return sp, ctx
	}
	b.span = SpanContext{SpanID: sp.ID()}
	return sp, context.WithValue(ctx, ctxKey{}, b)
}
