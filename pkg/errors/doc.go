// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUpstream,
//	    "recipe lookup failed",
//	    cause,
//	    map[string]any{
//	        "op": "lookup",
//	        "id": id,
//	    },
//	)
//
// Callers classify failures with CodeOf or IsCode rather than by
// matching message text.
package errors
