package interceptors

import "errors"

var (
	// ErrMissingTerminal is returned when a chain is built without a
	// terminal handler. This is a configuration error detected at build
	// time, never at invocation time.
	ErrMissingTerminal = errors.New("interceptor chain has no terminal handler")

	// ErrNextCalledTwice is returned when an interceptor invokes its next
	// handler more than once for a single invocation. The second call is
	// rejected and the downstream chain is not re-entered.
	ErrNextCalledTwice = errors.New("next handler already invoked for this invocation")

	// ErrRegistrySealed is returned when interceptors are registered after
	// the owning context has started dispatching.
	ErrRegistrySealed = errors.New("interceptor registry is sealed")

	// ErrUnknownOperation is returned when an invocation carries an
	// operation kind the runtime does not enumerate.
	ErrUnknownOperation = errors.New("unknown operation kind")
)
