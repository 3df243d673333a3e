// Package logging provides structured logging utilities shared by the
// bigod server and CLI.
//
// It wraps the standard library slog package with project defaults:
// JSON output to stderr, module/version context on every record,
// LOG_LEVEL environment-based configuration, and source location
// tracking for debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("bigod", version)
//
//	    slog.Info("processing request", "id", "req-123")
//	    slog.Error("operation failed", "error", err)
//	}
//
// The LOG_LEVEL environment variable controls verbosity (debug, info,
// warn, error; case-insensitive). If unset, INFO is used.
package logging
