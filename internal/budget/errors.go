package budget

import "fmt"

// ValidationError reports invalid caller input (bad percentages, non-positive
// budget, unknown category, non-positive expense amount). Handlers map it to
// a 400 response; it is never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
