package contracts

import "time"

// Workflow inbound inputs

// ExecuteWorkflowInput is the input to an ExecuteWorkflow invocation.
type ExecuteWorkflowInput struct {
	WorkflowType string
	Args         []interface{}
}

// HandleSignalInput is the input to a HandleSignal invocation.
type HandleSignalInput struct {
	SignalName string
	Arg        interface{}
}

// HandleQueryInput is the input to a HandleQuery invocation.
type HandleQueryInput struct {
	QueryType string
	Args      []interface{}
}

// Workflow outbound inputs

// ScheduleActivityInput is the input to a ScheduleActivity invocation.
type ScheduleActivityInput struct {
	ActivityType string
	Args         []interface{}
}

// StartTimerInput is the input to a StartTimer invocation.
type StartTimerInput struct {
	Duration time.Duration
}

// SignalExternalWorkflowInput is the input to a SignalExternalWorkflow
// invocation.
type SignalExternalWorkflowInput struct {
	WorkflowID string
	SignalName string
	Arg        interface{}
}

// Activity inbound inputs

// ExecuteActivityInput is the input to an ExecuteActivity invocation.
type ExecuteActivityInput struct {
	ActivityType string
	Args         []interface{}
}

// Client inputs

// StartWorkflowInput is the input to a StartWorkflow client invocation.
type StartWorkflowInput struct {
	WorkflowID   string
	WorkflowType string
	TaskQueue    string
	Args         []interface{}
}

// SignalWorkflowInput is the input to a SignalWorkflow client invocation.
type SignalWorkflowInput struct {
	WorkflowID string
	RunID      string
	SignalName string
	Arg        interface{}
}

// QueryWorkflowInput is the input to a QueryWorkflow client invocation.
type QueryWorkflowInput struct {
	WorkflowID string
	RunID      string
	QueryType  string
	Args       []interface{}
}

// CancelWorkflowInput is the input to a CancelWorkflow client invocation.
type CancelWorkflowInput struct {
	WorkflowID string
	RunID      string
}

// TerminateWorkflowInput is the input to a TerminateWorkflow client
// invocation.
type TerminateWorkflowInput struct {
	WorkflowID string
	RunID      string
	Reason     string
	Details    []interface{}
}
