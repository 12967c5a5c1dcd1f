package logging

import (
	"context"
	"log/slog"
)

// ctxKey is an unexported type for context keys defined in this package.
type ctxKey string

const (
	loggerKey      ctxKey = "logger"
	operationIDKey ctxKey = "operationID"
)

// WithLogger stores the provided logger on the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if ctx == nil || logger == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the operation-scoped logger or falls back to slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithOperationID stores an operation identifier on the context.
func WithOperationID(ctx context.Context, operationID string) context.Context {
	if ctx == nil || operationID == "" {
		return ctx
	}
	return context.WithValue(ctx, operationIDKey, operationID)
}

// OperationIDFromContext retrieves a previously stored operation identifier.
func OperationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if operationID, ok := ctx.Value(operationIDKey).(string); ok {
		return operationID
	}
	return ""
}
