// Package resume provides the pure update operations on the resume model.
package resume

import "fmt"

// FieldError represents a mutation addressed to a field that cannot take it:
// an unknown field name, a non-list field used as a list, or a value of the
// wrong type. It signals a programming error in the caller.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field error: %s: %s", e.Field, e.Message)
}
