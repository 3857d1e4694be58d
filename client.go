package weft

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wefthq/weft-go/contracts"
	"github.com/wefthq/weft-go/interceptors"
	"github.com/wefthq/weft-go/internal/reliability"
)

// Backend performs the real client operations against the orchestration
// runtime. It is the terminal side of every client-category chain; the
// transport behind it is not weft's concern.
type Backend interface {
	StartWorkflow(ctx context.Context, input *contracts.StartWorkflowInput) (*WorkflowRun, error)
	SignalWorkflow(ctx context.Context, input *contracts.SignalWorkflowInput) error
	QueryWorkflow(ctx context.Context, input *contracts.QueryWorkflowInput) (interface{}, error)
	CancelWorkflow(ctx context.Context, input *contracts.CancelWorkflowInput) error
	TerminateWorkflow(ctx context.Context, input *contracts.TerminateWorkflowInput) error
}

// WorkflowRun identifies a started workflow execution
type WorkflowRun struct {
	WorkflowID string
	RunID      string
}

// Client is the caller-facing entry point for workflow operations. Every
// call flows through the client-category interceptor chain before reaching
// the backend.
type Client struct {
	backend     Backend
	dispatcher  *interceptors.Dispatcher
	logger      *slog.Logger
	headers     contracts.Header
	retryPolicy reliability.RetryPolicy
}

// NewClient creates a new weft client over the given backend
func NewClient(backend Backend, options ...ClientOption) (*Client, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend must not be nil")
	}

	cfg := &clientConfig{
		logger: slog.Default(),
	}

	for _, opt := range options {
		opt(cfg)
	}

	registry := interceptors.NewRegistry()
	if len(cfg.interceptors) > 0 {
		if err := registry.Register(contracts.CategoryClient, cfg.interceptors...); err != nil {
			return nil, fmt.Errorf("failed to register client interceptors: %w", err)
		}
	}

	return &Client{
		backend:     backend,
		dispatcher:  interceptors.NewDispatcher(registry, cfg.logger),
		logger:      cfg.logger,
		headers:     cfg.headers.Clone(),
		retryPolicy: cfg.retryPolicy,
	}, nil
}

// StartWorkflow starts a new workflow execution
func (c *Client) StartWorkflow(ctx context.Context, input *contracts.StartWorkflowInput) (*WorkflowRun, error) {
	terminal := interceptors.HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
		in, err := clientInput[*contracts.StartWorkflowInput](inv)
		if err != nil {
			return nil, err
		}
		return c.backend.StartWorkflow(ctx, in)
	})

	result, err := c.dispatch(ctx, c.newInvocation(contracts.OpStartWorkflow, input), terminal)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	run, ok := result.(*WorkflowRun)
	if !ok {
		return nil, fmt.Errorf("StartWorkflow chain returned %T, expected *WorkflowRun", result)
	}
	return run, nil
}

// SignalWorkflow sends a signal to a running workflow execution
func (c *Client) SignalWorkflow(ctx context.Context, input *contracts.SignalWorkflowInput) error {
	terminal := interceptors.HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
		in, err := clientInput[*contracts.SignalWorkflowInput](inv)
		if err != nil {
			return nil, err
		}
		return nil, c.backend.SignalWorkflow(ctx, in)
	})

	_, err := c.dispatch(ctx, c.newInvocation(contracts.OpSignalWorkflow, input), terminal)
	return err
}

// QueryWorkflow queries the state of a workflow execution
func (c *Client) QueryWorkflow(ctx context.Context, input *contracts.QueryWorkflowInput) (interface{}, error) {
	terminal := interceptors.HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
		in, err := clientInput[*contracts.QueryWorkflowInput](inv)
		if err != nil {
			return nil, err
		}
		return c.backend.QueryWorkflow(ctx, in)
	})

	return c.dispatch(ctx, c.newInvocation(contracts.OpQueryWorkflow, input), terminal)
}

// CancelWorkflow requests cancellation of a workflow execution
func (c *Client) CancelWorkflow(ctx context.Context, input *contracts.CancelWorkflowInput) error {
	terminal := interceptors.HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
		in, err := clientInput[*contracts.CancelWorkflowInput](inv)
		if err != nil {
			return nil, err
		}
		return nil, c.backend.CancelWorkflow(ctx, in)
	})

	_, err := c.dispatch(ctx, c.newInvocation(contracts.OpCancelWorkflow, input), terminal)
	return err
}

// TerminateWorkflow forcefully terminates a workflow execution
func (c *Client) TerminateWorkflow(ctx context.Context, input *contracts.TerminateWorkflowInput) error {
	terminal := interceptors.HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
		in, err := clientInput[*contracts.TerminateWorkflowInput](inv)
		if err != nil {
			return nil, err
		}
		return nil, c.backend.TerminateWorkflow(ctx, in)
	})

	_, err := c.dispatch(ctx, c.newInvocation(contracts.OpTerminateWorkflow, input), terminal)
	return err
}

// newInvocation creates an invocation carrying the client's base headers.
func (c *Client) newInvocation(op contracts.OperationKind, input interface{}) *contracts.Invocation {
	inv := contracts.NewInvocation(op, input)
	for k, v := range c.headers {
		inv.Headers[k] = v
	}
	return inv
}

// dispatch runs the invocation through the client chain, retrying the whole
// chain when a retry policy is configured. Retrying outside the chain keeps
// the at-most-once contract on next handlers intact: every attempt is a
// fresh invocation of the chain.
func (c *Client) dispatch(ctx context.Context, inv *contracts.Invocation, terminal interceptors.Handler) (interface{}, error) {
	if c.retryPolicy == nil {
		return c.dispatcher.Dispatch(ctx, inv, terminal)
	}

	var result interface{}
	err := reliability.Retry(ctx, c.retryPolicy, func() error {
		res, dispatchErr := c.dispatcher.Dispatch(ctx, inv, terminal)
		if dispatchErr != nil {
			return dispatchErr
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// clientInput extracts the typed input from an invocation, surfacing a clear
// error when an interceptor replaced it with an incompatible payload.
func clientInput[T any](inv *contracts.Invocation) (T, error) {
	in, ok := inv.Input.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("operation %s: invocation input is %T, expected %T", inv.Operation, inv.Input, zero)
	}
	return in, nil
}
