package export

import "fmt"

// ContextErrorMessage is shown when a print context cannot be created
const ContextErrorMessage = "Could not create a print context. Ensure a Chrome or Chromium browser is available to the server."

// ContextError indicates the print surface could not be created or driven.
type ContextError struct {
	Message string
	Cause   error
}

func (e *ContextError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export context error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export context error: %s", e.Message)
}

func (e *ContextError) Unwrap() error {
	return e.Cause
}
