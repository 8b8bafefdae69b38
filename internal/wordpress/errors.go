package wordpress

import "fmt"

// ValidationError reports a bad or missing argument, detected before any
// request leaves the process.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// RequestError reports a failed remote call. Op carries the operation
// context, e.g. "fetch post 42".
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string { return fmt.Sprintf("Failed to %s: %v", e.Op, e.Err) }

func (e *RequestError) Unwrap() error { return e.Err }

func requestError(op string, err error) error {
	return &RequestError{Op: op, Err: err}
}
