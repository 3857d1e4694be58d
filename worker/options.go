package worker

import (
	"log/slog"

	"github.com/wefthq/weft-go/interceptors"
)

// workerConfig holds worker configuration
type workerConfig struct {
	logger           *slog.Logger
	workflowInbound  []interceptors.Interceptor
	workflowOutbound []interceptors.Interceptor
	activityInbound  []interceptors.Interceptor
	signaler         ExternalSignaler
}

// Option configures the worker
type Option func(*workerConfig)

// WithLogger sets a custom logger
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *workerConfig) {
		cfg.logger = logger
	}
}

// WithInterceptors installs the same ordered interceptor list on all three
// worker categories (workflow-inbound, workflow-outbound, activity-inbound).
// Interceptors opt out of individual operation kinds via Handles.
func WithInterceptors(ics ...interceptors.Interceptor) Option {
	return func(cfg *workerConfig) {
		cfg.workflowInbound = ics
		cfg.workflowOutbound = ics
		cfg.activityInbound = ics
	}
}

// WithWorkflowInboundInterceptors sets the workflow-inbound interceptor list
func WithWorkflowInboundInterceptors(ics ...interceptors.Interceptor) Option {
	return func(cfg *workerConfig) {
		cfg.workflowInbound = ics
	}
}

// WithWorkflowOutboundInterceptors sets the workflow-outbound interceptor list
func WithWorkflowOutboundInterceptors(ics ...interceptors.Interceptor) Option {
	return func(cfg *workerConfig) {
		cfg.workflowOutbound = ics
	}
}

// WithActivityInboundInterceptors sets the activity-inbound interceptor list
func WithActivityInboundInterceptors(ics ...interceptors.Interceptor) Option {
	return func(cfg *workerConfig) {
		cfg.activityInbound = ics
	}
}

// WithExternalSignaler sets the collaborator delivering external workflow
// signals
func WithExternalSignaler(signaler ExternalSignaler) Option {
	return func(cfg *workerConfig) {
		cfg.signaler = signaler
	}
}
