package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/wefthq/weft-go/contracts"
	"github.com/wefthq/weft-go/interceptors"
)

// WorkflowHandler is the body of a registered workflow
type WorkflowHandler func(wctx *WorkflowContext, args []interface{}) (interface{}, error)

// ActivityHandler is the body of a registered activity
type ActivityHandler func(ctx context.Context, args []interface{}) (interface{}, error)

// ExternalSignaler delivers signals to workflow executions outside this
// worker. It is an external collaborator; without one,
// SignalExternalWorkflow fails.
type ExternalSignaler interface {
	SignalExternal(ctx context.Context, input *contracts.SignalExternalWorkflowInput) error
}

// Worker hosts workflow and activity handlers and owns the interceptor
// registry for the inbound and outbound categories.
type Worker struct {
	logger   *slog.Logger
	registry *interceptors.Registry
	signaler ExternalSignaler

	// activityDispatcher is shared across workflow executions: activity
	// chains close over no per-execution state, only the handler lookup.
	activityDispatcher *interceptors.Dispatcher

	mu         sync.RWMutex
	workflows  map[string]WorkflowHandler
	activities map[string]ActivityHandler
}

// New creates a worker
func New(options ...Option) *Worker {
	cfg := &workerConfig{
		logger: slog.Default(),
	}

	for _, opt := range options {
		opt(cfg)
	}

	registry := interceptors.NewRegistry()
	if len(cfg.workflowInbound) > 0 {
		// Registration cannot fail before the first dispatch seals the
		// registry.
		_ = registry.Register(contracts.CategoryWorkflowInbound, cfg.workflowInbound...)
	}
	if len(cfg.workflowOutbound) > 0 {
		_ = registry.Register(contracts.CategoryWorkflowOutbound, cfg.workflowOutbound...)
	}
	if len(cfg.activityInbound) > 0 {
		_ = registry.Register(contracts.CategoryActivityInbound, cfg.activityInbound...)
	}

	return &Worker{
		logger:             cfg.logger,
		registry:           registry,
		signaler:           cfg.signaler,
		activityDispatcher: interceptors.NewDispatcher(registry, cfg.logger),
		workflows:          make(map[string]WorkflowHandler),
		activities:         make(map[string]ActivityHandler),
	}
}

// RegisterWorkflow registers a workflow handler under its type name
func (w *Worker) RegisterWorkflow(workflowType string, handler WorkflowHandler) error {
	if handler == nil {
		return fmt.Errorf("workflow handler for %q must not be nil", workflowType)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.workflows[workflowType]; exists {
		return fmt.Errorf("workflow %q already registered", workflowType)
	}
	w.workflows[workflowType] = handler
	return nil
}

// RegisterActivity registers an activity handler under its type name
func (w *Worker) RegisterActivity(activityType string, handler ActivityHandler) error {
	if handler == nil {
		return fmt.Errorf("activity handler for %q must not be nil", activityType)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.activities[activityType]; exists {
		return fmt.Errorf("activity %q already registered", activityType)
	}
	w.activities[activityType] = handler
	return nil
}

// ExecuteWorkflow runs the registered workflow through the workflow-inbound
// chain and returns its result. The returned WorkflowContext stays usable
// for delivering signals and queries to the execution.
func (w *Worker) ExecuteWorkflow(ctx context.Context, info contracts.WorkflowInfo, input *contracts.ExecuteWorkflowInput) (interface{}, error) {
	wctx := w.newWorkflowContext(ctx, info)
	return wctx.execute(input)
}

// NewWorkflowContext creates the owning context for one workflow execution
// without running it, for hosts that deliver signals or queries before or
// after the main execution.
func (w *Worker) NewWorkflowContext(ctx context.Context, info contracts.WorkflowInfo) *WorkflowContext {
	return w.newWorkflowContext(ctx, info)
}

// ExecuteActivity runs the registered activity through the activity-inbound
// chain and returns its result.
func (w *Worker) ExecuteActivity(ctx context.Context, input *contracts.ExecuteActivityInput) (interface{}, error) {
	terminal := interceptors.HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
		in, ok := inv.Input.(*contracts.ExecuteActivityInput)
		if !ok {
			return nil, fmt.Errorf("ExecuteActivity invocation input is %T", inv.Input)
		}

		handler, err := w.activityHandler(in.ActivityType)
		if err != nil {
			return nil, err
		}
		return handler(ctx, in.Args)
	})

	inv := contracts.NewInvocation(contracts.OpExecuteActivity, input)
	return w.activityDispatcher.Dispatch(ctx, inv, terminal)
}

func (w *Worker) newWorkflowContext(ctx context.Context, info contracts.WorkflowInfo) *WorkflowContext {
	return &WorkflowContext{
		worker: w,
		ctx:    ctx,
		info:   info,
		// Workflow chains bind per-execution state, so every execution
		// gets its own dispatcher over the shared registry.
		dispatcher:     interceptors.NewDispatcher(w.registry, w.logger),
		signalHandlers: make(map[string]SignalHandler),
		queryHandlers:  make(map[string]QueryHandler),
	}
}

func (w *Worker) workflowHandler(workflowType string) (WorkflowHandler, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	handler, exists := w.workflows[workflowType]
	if !exists {
		return nil, fmt.Errorf("no workflow registered for type %q", workflowType)
	}
	return handler, nil
}

func (w *Worker) activityHandler(activityType string) (ActivityHandler, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	handler, exists := w.activities[activityType]
	if !exists {
		return nil, fmt.Errorf("no activity registered for type %q", activityType)
	}
	return handler, nil
}
