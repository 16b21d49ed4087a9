package logging

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

type contextKey struct{}

var discard = NewLogger(io.Discard)

// WithLogger returns a new context with the given logger attached.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// With attaches a child logger carrying keyvals to ctx, so every log line
// written further down the call chain includes them.
func With(ctx context.Context, keyvals ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(keyvals...))
}

// FromContext retrieves the logger from the context. A nil context or one
// without a logger yields a WarnLevel logger that discards output.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return discard
	}
	if l, ok := ctx.Value(contextKey{}).(*log.Logger); ok {
		return l
	}
	return discard
}
