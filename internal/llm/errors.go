package llm

import "fmt"

// User-facing messages for generator failures
const (
	MissingKeyMessage     = "API key not configured. Please ensure the API_KEY (or GEMINI_API_KEY) environment variable is set."
	GenerationFailMessage = "An error occurred while communicating with the AI. Please try again."
)

// ConfigurationError indicates a missing or rejected generator credential.
// It is not retried.
type ConfigurationError struct {
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// GenerationError indicates a transport or provider failure, or an unusable response.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
