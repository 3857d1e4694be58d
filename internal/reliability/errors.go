package reliability

import "errors"

// ErrNonRetryable marks an error that must never be retried. Wrap a failure
// with it to stop a retry policy immediately.
var ErrNonRetryable = errors.New("error is not retryable")

// retryable is implemented by errors that decide their own retryability
type retryable interface {
	IsRetryable() bool
}

// IsRetryable reports whether an error should be retried. Errors are
// retryable unless they are marked with ErrNonRetryable or implement
// IsRetryable and say otherwise.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrNonRetryable) {
		return false
	}

	var r retryable
	if errors.As(err, &r) {
		return r.IsRetryable()
	}

	return true
}
