package contracts

// Category identifies which side of the runtime an operation belongs to.
// Interceptors are registered per category; every OperationKind maps to
// exactly one Category.
type Category string

const (
	// CategoryWorkflowInbound covers calls delivered into workflow code:
	// executing the workflow function, handling signals and queries.
	CategoryWorkflowInbound Category = "workflow-inbound"

	// CategoryWorkflowOutbound covers calls made from workflow code back
	// into the runtime: scheduling activities, starting timers, signaling
	// other workflows.
	CategoryWorkflowOutbound Category = "workflow-outbound"

	// CategoryActivityInbound covers calls delivered into activity code.
	CategoryActivityInbound Category = "activity-inbound"

	// CategoryClient covers calls made through the client facade.
	CategoryClient Category = "client"
)

// OperationKind identifies a concrete intercepted action.
type OperationKind string

const (
	// Workflow inbound operations
	OpExecuteWorkflow OperationKind = "ExecuteWorkflow"
	OpHandleSignal    OperationKind = "HandleSignal"
	OpHandleQuery     OperationKind = "HandleQuery"

	// Workflow outbound operations
	OpScheduleActivity       OperationKind = "ScheduleActivity"
	OpStartTimer             OperationKind = "StartTimer"
	OpSignalExternalWorkflow OperationKind = "SignalExternalWorkflow"

	// Activity inbound operations
	OpExecuteActivity OperationKind = "ExecuteActivity"

	// Client operations
	OpStartWorkflow     OperationKind = "StartWorkflow"
	OpSignalWorkflow    OperationKind = "SignalWorkflow"
	OpQueryWorkflow     OperationKind = "QueryWorkflow"
	OpCancelWorkflow    OperationKind = "CancelWorkflow"
	OpTerminateWorkflow OperationKind = "TerminateWorkflow"
)

var operationCategories = map[OperationKind]Category{
	OpExecuteWorkflow: CategoryWorkflowInbound,
	OpHandleSignal:    CategoryWorkflowInbound,
	OpHandleQuery:     CategoryWorkflowInbound,

	OpScheduleActivity:       CategoryWorkflowOutbound,
	OpStartTimer:             CategoryWorkflowOutbound,
	OpSignalExternalWorkflow: CategoryWorkflowOutbound,

	OpExecuteActivity: CategoryActivityInbound,

	OpStartWorkflow:     CategoryClient,
	OpSignalWorkflow:    CategoryClient,
	OpQueryWorkflow:     CategoryClient,
	OpCancelWorkflow:    CategoryClient,
	OpTerminateWorkflow: CategoryClient,
}

// Category returns the call-category the operation kind belongs to, or an
// empty Category for an unknown kind.
func (k OperationKind) Category() Category {
	return operationCategories[k]
}

// IsValid reports whether the operation kind is one the runtime enumerates.
func (k OperationKind) IsValid() bool {
	_, ok := operationCategories[k]
	return ok
}

// String implements fmt.Stringer.
func (k OperationKind) String() string {
	return string(k)
}
