package samara

import "github.com/wuzekang/samara/internal"

// DisposedError, BorrowError and InternalError are the concrete panic
// payloads the runtime raises; handle them with OnError or a recover
// around Set/Batch if a caller needs to distinguish them from arbitrary
// application panics.
type (
	DisposedError = internal.DisposedError
	BorrowError   = internal.BorrowError
	InternalError = internal.InternalError
)
