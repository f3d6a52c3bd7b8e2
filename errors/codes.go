package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Construction errors
const (
	// ErrCodeConfigurationInvalid indicates invalid construction arguments;
	// the bootstrap never starts.
	ErrCodeConfigurationInvalid ErrorCode = "CONFIGURATION_INVALID"
)

// Barrier errors
const (
	// ErrCodeDuplicateRegistration indicates a task id was registered while
	// already pending.
	ErrCodeDuplicateRegistration ErrorCode = "DUPLICATE_REGISTRATION"
	// ErrCodeBarrierClosed indicates a registration attempt after the
	// barrier already reached ready.
	ErrCodeBarrierClosed ErrorCode = "BARRIER_CLOSED"
)

// Load errors
const (
	// ErrCodeLoadFailed indicates a hook failed during synchronous
	// execution, aborting the bootstrap.
	ErrCodeLoadFailed ErrorCode = "LOAD_FAILED"
)

// Runtime errors
const (
	// ErrCodeAsyncFailure indicates a normalized asynchronous failure that
	// escaped its originating hook.
	ErrCodeAsyncFailure ErrorCode = "ASYNC_FAILURE"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
