package assist

import "fmt"

// InputError indicates a request that cannot be sent to the generator.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input error: %s: %s", e.Field, e.Message)
}
