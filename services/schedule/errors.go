package schedule

import "fmt"

// InvalidInputError marks a malformed call rather than an empty
// computation result, so callers can tell "doctor/date not chosen yet"
// apart from "no slots available".
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Message)
}

func invalidInput(field, message string) error {
	return &InvalidInputError{Field: field, Message: message}
}
