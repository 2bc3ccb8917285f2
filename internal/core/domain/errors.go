package domain

import "errors"

// Error kinds surfaced by the decision engines. Callers classify failures
// with errors.Is; engines wrap these with context using %w.
var (
	// ErrInvalidInput is caller-correctable and never retried.
	ErrInvalidInput = errors.New("invalid input")
	// ErrExternalDependency marks a failed language-model call. It is always
	// recovered by the content generator and never reaches a caller.
	ErrExternalDependency = errors.New("external dependency failure")
	// ErrInternalComputation marks an unexpected failure while scoring.
	ErrInternalComputation = errors.New("internal computation error")
	// ErrAnalysisFailure is returned by the A/B analyzer for any failure that
	// is not the caller's fault.
	ErrAnalysisFailure = errors.New("analysis failed")
)
