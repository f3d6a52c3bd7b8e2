// Package errors provides unified error handling for bootkit.
//
// It implements structured error types with machine-readable codes
// covering the bootstrap failure taxonomy: invalid configuration,
// duplicate task registration, hook load failures, closed-barrier
// registration, and normalized asynchronous failures.
package errors
