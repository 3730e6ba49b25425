package menu

import "fmt"

// NotFoundError is returned when an executed command id is absent from the
// registry.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command %q not found", e.ID)
}

// DisabledError is returned when a command exists but its enablement
// predicate rejects the execution context. This guards against stale menu
// state: the visible menu was built against an earlier context.
type DisabledError struct {
	ID string
}

func (e *DisabledError) Error() string {
	return fmt.Sprintf("command %q is disabled for this context", e.ID)
}

// ExecutionError wraps an error returned by a command's Run function.
type ExecutionError struct {
	ID  string
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.ID, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
