package contracts

import (
	"time"

	"github.com/google/uuid"
)

// Header carries string-keyed metadata alongside an invocation. Headers flow
// through the chain unchanged unless an interceptor explicitly replaces them.
type Header map[string]string

// Get returns the value for key, or an empty string when absent.
func (h Header) Get(key string) string {
	if h == nil {
		return ""
	}
	return h[key]
}

// Has reports whether key is present.
func (h Header) Has(key string) bool {
	if h == nil {
		return false
	}
	_, ok := h[key]
	return ok
}

// Clone returns an independent copy of the header. Cloning a nil header
// returns nil.
func (h Header) Clone() Header {
	if h == nil {
		return nil
	}
	copied := make(Header, len(h))
	for k, v := range h {
		copied[k] = v
	}
	return copied
}

// Invocation is one intercepted call: the operation being performed, its
// typed input payload, and header metadata. A single Invocation instance
// exists per chain invocation; an interceptor that wants downstream frames to
// see different data passes a replacement to next rather than sharing state
// out of band.
type Invocation struct {
	// ID uniquely identifies this invocation for logging and correlation.
	ID string

	// Operation is the intercepted action.
	Operation OperationKind

	// Input is the operation's typed input payload, one of the *Input
	// structs in this package for runtime-originated calls.
	Input interface{}

	// Headers carries metadata across the chain.
	Headers Header

	// StartedAt records when the invocation was created.
	StartedAt time.Time
}

// NewInvocation creates an invocation for the given operation with a
// generated ID.
func NewInvocation(op OperationKind, input interface{}) *Invocation {
	return &Invocation{
		ID:        uuid.New().String(),
		Operation: op,
		Input:     input,
		Headers:   Header{},
		StartedAt: time.Now().UTC(),
	}
}

// WithHeaders returns a copy of the invocation carrying the given headers.
// The original is left untouched so upstream frames keep their view.
func (inv *Invocation) WithHeaders(h Header) *Invocation {
	copied := *inv
	copied.Headers = h
	return &copied
}

// WithInput returns a copy of the invocation carrying a replacement input.
func (inv *Invocation) WithInput(input interface{}) *Invocation {
	copied := *inv
	copied.Input = input
	return &copied
}
