// Package interceptors provides the chainable interceptor mechanism that
// weft exposes to hosting runtimes (workers, clients, workflow contexts).
//
// An interceptor wraps an intercepted operation: its code before calling next
// runs on the way in, its code after next returns runs on the way out, and
// the real operation (the terminal handler) sits at the innermost position.
// This package provides:
//   - Interceptor interface with per-operation opt-in via Handles
//   - Registry holding the ordered interceptor lists per call-category
//   - Chain composing interceptors around a terminal handler
//   - Dispatcher, the hosting runtime's entry point, with lazy per-operation
//     chain caching
//   - Built-in interceptors for common concerns
//
// Built-in interceptors:
//   - LoggingInterceptor: logs operation start, completion, and timing
//   - MetricsInterceptor: collects per-operation counters and latency
//   - HeaderAuthInterceptor: rejects invocations without valid auth headers
//   - TimeoutInterceptor: bounds the time an operation may take
//   - ConditionalInterceptor: applies another interceptor selectively
//
// Example usage:
//
//	registry := interceptors.NewRegistry()
//	registry.Register(contracts.CategoryClient,
//		interceptors.NewLoggingInterceptor(logger),
//		interceptors.NewHeaderAuthInterceptor(authorizer),
//	)
//
//	dispatcher := interceptors.NewDispatcher(registry, logger)
//	result, err := dispatcher.Dispatch(ctx, inv, terminal)
//
// Custom interceptors embed Base and override the methods they need:
//
//	type AuditInterceptor struct {
//		interceptors.Base
//	}
//
//	func (i *AuditInterceptor) Handles(kind contracts.OperationKind) bool {
//		return kind.Category() == contracts.CategoryClient
//	}
//
//	func (i *AuditInterceptor) Intercept(ctx context.Context, inv *contracts.Invocation, next interceptors.Handler) (interface{}, error) {
//		// pre-processing logic
//		result, err := next.Handle(ctx, inv)
//		// post-processing logic
//		return result, err
//	}
//
//	func (i *AuditInterceptor) Name() string {
//		return "AuditInterceptor"
//	}
//
// Interceptors run in registration order on the way in and in reverse order
// on the way out, with the terminal handler innermost. An interceptor that
// does not handle an operation kind is excluded from that operation's chain
// entirely, so its presence or absence is observably identical for that
// operation.
package interceptors
