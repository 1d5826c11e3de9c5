package ports

import "context"

// Span represents an in-flight trace span.
type Span interface {
	// SetAttribute attaches a key/value pair to the span.
	SetAttribute(key string, value any)

	// RecordError records an error against the span.
	RecordError(err error)

	// End completes the span.
	End()
}

// Tracer defines the interface for creating trace spans around the
// reconciliation and resolution operations.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start begins a span with the given name and returns a context carrying it.
	Start(ctx context.Context, name string) (context.Context, Span)
}
