package interceptors

import (
	"context"
	"log/slog"
	"time"

	"github.com/wefthq/weft-go/contracts"
)

// LoggingInterceptor logs operation processing with timing information. It
// handles every operation kind.
type LoggingInterceptor struct {
	logger *slog.Logger
}

// NewLoggingInterceptor creates a new logging interceptor
func NewLoggingInterceptor(logger *slog.Logger) *LoggingInterceptor {
	if logger == nil {
		logger = slog.Default()
	}

	return &LoggingInterceptor{logger: logger}
}

// Handles implements Interceptor
func (i *LoggingInterceptor) Handles(contracts.OperationKind) bool {
	return true
}

// Intercept implements Interceptor
func (i *LoggingInterceptor) Intercept(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error) {
	start := time.Now()

	i.logger.Info("operation started",
		"operation", inv.Operation,
		"invocationId", inv.ID,
	)

	result, err := next.Handle(ctx, inv)
	duration := time.Since(start)

	if err != nil {
		i.logger.Error("operation failed",
			"operation", inv.Operation,
			"invocationId", inv.ID,
			"duration", duration,
			"error", err,
		)
	} else {
		i.logger.Info("operation completed",
			"operation", inv.Operation,
			"invocationId", inv.ID,
			"duration", duration,
		)
	}

	return result, err
}

// Name implements Interceptor
func (i *LoggingInterceptor) Name() string {
	return "LoggingInterceptor"
}
