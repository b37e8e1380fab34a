package cli

import "fmt"

const (
	// ExitTestsFailed is returned when at least one comparison failed
	ExitTestsFailed = 1
	// ExitError is returned on operational errors
	ExitError = 2
)

// CodedError carries the process exit code for an error
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// WithCode wraps err with an exit code. err may be nil when the exit code
// alone is the message.
func WithCode(err error, code int) error {
	return &CodedError{Code: code, Err: err}
}

// Errorf formats an operational error
func Errorf(format string, args ...any) error {
	return WithCode(fmt.Errorf(format, args...), ExitError)
}
