// Package worker provides an in-process hosting surface for workflow and
// activity code, wiring the workflow-inbound, workflow-outbound, and
// activity-inbound interceptor chains around user-registered handlers.
//
// A Worker owns the interceptor registry and the registered handler sets.
// Each workflow execution gets its own WorkflowContext, which owns the
// chains for that execution: inbound calls (execute, signals, queries) run
// through the workflow-inbound chain, and calls the workflow makes back into
// the runtime (ScheduleActivity, StartTimer, SignalExternalWorkflow) run
// through the workflow-outbound chain. Activities scheduled from a workflow
// execute through the worker's activity-inbound chain.
//
// Example usage:
//
//	w := worker.New(
//		worker.WithInterceptors(interceptors.NewLoggingInterceptor(logger)),
//	)
//	w.RegisterWorkflow("Order", func(wctx *worker.WorkflowContext, args []interface{}) (interface{}, error) {
//		return wctx.ScheduleActivity(&contracts.ScheduleActivityInput{
//			ActivityType: "sendEmail",
//			Args:         args,
//		})
//	})
//	w.RegisterActivity("sendEmail", sendEmail)
//
//	result, err := w.ExecuteWorkflow(ctx, info, &contracts.ExecuteWorkflowInput{
//		WorkflowType: "Order",
//	})
//
// The worker executes handlers in-process; durable scheduling, replay, and
// transport belong to the orchestration engine the worker is embedded in.
package worker
