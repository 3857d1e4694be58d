// Package contracts provides the core invocation types shared by the weft
// interceptor layer and its hosting runtimes.
//
// This package defines the vocabulary that flows through every interceptor
// chain:
//   - Category: the four call-categories an orchestration runtime exposes
//     (workflow-inbound, workflow-outbound, activity-inbound, client)
//   - OperationKind: the concrete intercepted action (ExecuteWorkflow,
//     ScheduleActivity, StartWorkflow, ...)
//   - Invocation: one call's input payload plus header metadata
//   - Typed input structs for each operation kind
//   - WorkflowInfo / ActivityInfo: read-only owning-context descriptors
//
// All types are plain data. Chain composition and dispatch live in the
// interceptors package; hosting surfaces live in the client and worker
// packages.
package contracts
