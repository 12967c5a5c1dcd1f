package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Operation represents one logical client operation, typically spanning a
// handful of remote calls.
type Operation struct {
	name   string
	logger *slog.Logger
	start  time.Time
}

// StartOperation derives an operation-scoped context, enriching the logger
// with the operation name and a fresh identifier. Nested operations inherit
// the identifier of the outermost one.
func StartOperation(ctx context.Context, name string) (context.Context, *Operation) {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := FromContext(ctx)

	operationID := OperationIDFromContext(ctx)
	if operationID == "" {
		operationID = uuid.NewString()
		ctx = WithOperationID(ctx, operationID)
		logger = logger.With(slog.String("operation_id", operationID))
	}

	logger = logger.With(slog.String("operation", name))

	ctx = WithLogger(ctx, logger)

	op := &Operation{
		name:   name,
		logger: logger,
		start:  time.Now(),
	}

	return ctx, op
}

// End finalizes the operation and emits a completion log entry.
func (o *Operation) End() {
	if o == nil {
		return
	}
	o.logger.Debug("operation completed", slog.Duration("duration", time.Since(o.start)))
}
