// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUpstream,
//	    "model call failed",
//	    cause,
//	    map[string]interface{}{
//	        "model": modelID,
//	    },
//	)
package errors
