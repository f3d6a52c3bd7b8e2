// Package barrier implements the readiness barrier: a registry of
// pending asynchronous tasks that signals ready exactly once, after
// loading has finished and every registered task has completed.
//
// Hooks register outstanding work and receive a single-use Token;
// invoking the token completes the task. Each task carries a one-shot
// watchdog that emits an advisory timeout notification if completion
// is slow, without altering task or barrier state. Completion and
// timeout listeners observe individual tasks; the ready notification
// is a single-resolution future with an observer list, so firing it
// from within a nested completion cannot re-enter or double-fire.
package barrier
