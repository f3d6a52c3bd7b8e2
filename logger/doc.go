// Package logger provides structured logging for bootkit using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields. The lifecycle
// coordinator logs readiness-barrier events through this package.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//
// # Usage
//
//	log := logger.NewDefault("bootkit").WithComponent("barrier")
//	log.Info("task done", logger.Fields("task_id", id))
package logger
