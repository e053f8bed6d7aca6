package lab

import (
	"errors"
	"fmt"
)

// Errors reported only when the model runs in strict mode. In the default
// lenient mode bad input is stored as NaN and surfaces in the result text.
var (
	// ErrInvalidInput indicates a numeric field that does not parse.
	ErrInvalidInput = errors.New("lab: invalid numeric input")

	// ErrUnknownKey indicates a liquid or planet missing from the catalog.
	ErrUnknownKey = errors.New("lab: unknown catalog key")

	// ErrUnknownField indicates a field name outside the form.
	ErrUnknownField = errors.New("lab: unknown field")
)

// FieldError wraps an input error with the field and the raw value.
type FieldError struct {
	Field   Field
	Raw     string
	Wrapped error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Raw, e.Wrapped)
}

func (e *FieldError) Unwrap() error {
	return e.Wrapped
}
