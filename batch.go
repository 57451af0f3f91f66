package samara

import "github.com/wuzekang/samara/internal"

// InBatch reports whether a Batch call is currently on the stack.
func InBatch() bool {
	return internal.GetRuntime().InBatch()
}
