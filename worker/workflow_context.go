package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wefthq/weft-go/contracts"
	"github.com/wefthq/weft-go/interceptors"
)

// SignalHandler processes a signal delivered to a workflow execution
type SignalHandler func(ctx context.Context, arg interface{}) error

// QueryHandler answers a query against a workflow execution
type QueryHandler func(ctx context.Context, args []interface{}) (interface{}, error)

// WorkflowContext is the owning context of one workflow execution. It holds
// that execution's interceptor chains and is handed to the workflow handler
// so outbound calls flow through the workflow-outbound chain.
type WorkflowContext struct {
	worker     *Worker
	ctx        context.Context
	info       contracts.WorkflowInfo
	dispatcher *interceptors.Dispatcher

	mu             sync.RWMutex
	signalHandlers map[string]SignalHandler
	queryHandlers  map[string]QueryHandler
}

// Info returns the read-only descriptor of this workflow execution
func (w *WorkflowContext) Info() contracts.WorkflowInfo {
	return w.info
}

// Context returns the execution's context
func (w *WorkflowContext) Context() context.Context {
	return w.ctx
}

// SetSignalHandler registers the handler for a signal name, replacing any
// previous handler.
func (w *WorkflowContext) SetSignalHandler(signalName string, handler SignalHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.signalHandlers[signalName] = handler
}

// SetQueryHandler registers the handler for a query type, replacing any
// previous handler.
func (w *WorkflowContext) SetQueryHandler(queryType string, handler QueryHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.queryHandlers[queryType] = handler
}

// execute runs the workflow body through the workflow-inbound chain.
func (w *WorkflowContext) execute(input *contracts.ExecuteWorkflowInput) (interface{}, error) {
	terminal := interceptors.HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
		in, ok := inv.Input.(*contracts.ExecuteWorkflowInput)
		if !ok {
			return nil, fmt.Errorf("ExecuteWorkflow invocation input is %T", inv.Input)
		}

		handler, err := w.worker.workflowHandler(in.WorkflowType)
		if err != nil {
			return nil, err
		}
		return handler(w, in.Args)
	})

	inv := contracts.NewInvocation(contracts.OpExecuteWorkflow, input)
	return w.dispatcher.Dispatch(w.ctx, inv, terminal)
}

// DeliverSignal routes a signal through the workflow-inbound chain to the
// registered signal handler.
func (w *WorkflowContext) DeliverSignal(ctx context.Context, input *contracts.HandleSignalInput) error {
	terminal := interceptors.HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
		in, ok := inv.Input.(*contracts.HandleSignalInput)
		if !ok {
			return nil, fmt.Errorf("HandleSignal invocation input is %T", inv.Input)
		}

		w.mu.RLock()
		handler, exists := w.signalHandlers[in.SignalName]
		w.mu.RUnlock()
		if !exists {
			return nil, fmt.Errorf("no handler for signal %q on workflow %s", in.SignalName, w.info.WorkflowID)
		}
		return nil, handler(ctx, in.Arg)
	})

	inv := contracts.NewInvocation(contracts.OpHandleSignal, input)
	_, err := w.dispatcher.Dispatch(ctx, inv, terminal)
	return err
}

// DeliverQuery routes a query through the workflow-inbound chain to the
// registered query handler and returns its answer.
func (w *WorkflowContext) DeliverQuery(ctx context.Context, input *contracts.HandleQueryInput) (interface{}, error) {
	terminal := interceptors.HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
		in, ok := inv.Input.(*contracts.HandleQueryInput)
		if !ok {
			return nil, fmt.Errorf("HandleQuery invocation input is %T", inv.Input)
		}

		w.mu.RLock()
		handler, exists := w.queryHandlers[in.QueryType]
		w.mu.RUnlock()
		if !exists {
			return nil, fmt.Errorf("no handler for query %q on workflow %s", in.QueryType, w.info.WorkflowID)
		}
		return handler(ctx, in.Args)
	})

	inv := contracts.NewInvocation(contracts.OpHandleQuery, input)
	return w.dispatcher.Dispatch(ctx, inv, terminal)
}

// ScheduleActivity runs an activity through the workflow-outbound chain,
// executing it on the worker's activity-inbound path, and returns its
// result.
func (w *WorkflowContext) ScheduleActivity(input *contracts.ScheduleActivityInput) (interface{}, error) {
	terminal := interceptors.HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
		in, ok := inv.Input.(*contracts.ScheduleActivityInput)
		if !ok {
			return nil, fmt.Errorf("ScheduleActivity invocation input is %T", inv.Input)
		}

		return w.worker.ExecuteActivity(ctx, &contracts.ExecuteActivityInput{
			ActivityType: in.ActivityType,
			Args:         in.Args,
		})
	})

	inv := contracts.NewInvocation(contracts.OpScheduleActivity, input)
	return w.dispatcher.Dispatch(w.ctx, inv, terminal)
}

// StartTimer sleeps for the given duration through the workflow-outbound
// chain. Cancelling the execution's context fails the timer with the
// context's error.
func (w *WorkflowContext) StartTimer(duration time.Duration) error {
	terminal := interceptors.HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
		in, ok := inv.Input.(*contracts.StartTimerInput)
		if !ok {
			return nil, fmt.Errorf("StartTimer invocation input is %T", inv.Input)
		}

		timer := time.NewTimer(in.Duration)
		defer timer.Stop()

		select {
		case <-timer.C:
			return nil, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})

	inv := contracts.NewInvocation(contracts.OpStartTimer, &contracts.StartTimerInput{Duration: duration})
	_, err := w.dispatcher.Dispatch(w.ctx, inv, terminal)
	return err
}

// SignalExternalWorkflow signals another workflow execution through the
// workflow-outbound chain. The worker's ExternalSignaler performs the
// delivery; without one the call fails.
func (w *WorkflowContext) SignalExternalWorkflow(input *contracts.SignalExternalWorkflowInput) error {
	terminal := interceptors.HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
		in, ok := inv.Input.(*contracts.SignalExternalWorkflowInput)
		if !ok {
			return nil, fmt.Errorf("SignalExternalWorkflow invocation input is %T", inv.Input)
		}

		if w.worker.signaler == nil {
			return nil, fmt.Errorf("no external signaler configured on worker")
		}
		return nil, w.worker.signaler.SignalExternal(ctx, in)
	})

	inv := contracts.NewInvocation(contracts.OpSignalExternalWorkflow, input)
	_, err := w.dispatcher.Dispatch(w.ctx, inv, terminal)
	return err
}
