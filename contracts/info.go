package contracts

// WorkflowInfo describes the workflow execution an interceptor is attached
// to. It is handed to interceptors at owning-context construction and is
// read-only thereafter.
type WorkflowInfo struct {
	WorkflowID   string
	RunID        string
	WorkflowType string
	TaskQueue    string
	Attempt      int
}

// ActivityInfo describes the activity invocation an interceptor is attached
// to.
type ActivityInfo struct {
	ActivityID   string
	ActivityType string
	WorkflowID   string
	RunID        string
	TaskQueue    string
	Attempt      int
}
