// Package logger provides structured logging for gocmd using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields. A logger built from a
// Config with Disabled set is a no-op and reports Enabled() == false; the
// process package checks this before rendering output for its execution log.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//	  output: "stderr"
//	  disabled: false
//
// # Usage
//
//	log := logger.Get("process")
//	log.Info("executed command", logger.Fields("command", "/bin/echo"))
package logger
