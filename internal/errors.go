package internal

import "fmt"

// DisposedError is raised when a handle whose node key is stale is
// dereferenced: the node was already removed from the arena.
type DisposedError struct {
	Op string
}

func (e *DisposedError) Error() string {
	return fmt.Sprintf("samara: %s on a disposed node", e.Op)
}

// BorrowError is raised on a signal borrow-rule violation: reading while
// written, writing while read, or writing while written.
type BorrowError struct {
	Op    string
	State string
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("samara: %s violates borrow rules (signal is %s)", e.Op, e.State)
}

// InternalError indicates a node's inner kind did not match the operation
// performed on it. This is always an engine bug, never a user error.
type InternalError struct {
	Detail string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("samara: internal invariant violated: %s", e.Detail)
}
