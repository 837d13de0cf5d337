package engine

import "fmt"

// InputError reports a request rejected before any collaborator was called:
// a non-positive item count or a topic the catalog does not know.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CollaboratorError wraps a failure from the history or candidate-pool
// collaborator. The engine never retries; the caller owns backoff policy.
type CollaboratorError struct {
	Op  string // "attempt history", "candidate pool"
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("failed to generate adaptive sequence: %s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }
