package generator

import "errors"

// ErrBusy is returned by Orchestrator.Request while a generation request is
// already in flight. The caller should treat it as a no-op.
var ErrBusy = errors.New("a reply is already being generated")

// ValidationError reports input rejected before any background work starts.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// GenerationError wraps any failure from the generation service: transport,
// auth, quota, or a malformed response. The underlying message is preserved.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "OpenAI API error: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
