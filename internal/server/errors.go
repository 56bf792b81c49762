package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/assist"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/session"
)

// Notification is the error body shown to the user as a dismissable message.
type Notification struct {
	Error   string `json:"error"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// RateLimitNotification adds limiter state to a 429 notification.
type RateLimitNotification struct {
	Notification
	Limit      int `json:"limit"`
	Remaining  int `json:"remaining"`
	RetryAfter int `json:"retry_after,omitempty"`
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		cfgErr      *llm.ConfigurationError
		genErr      *llm.GenerationError
		ctxErr      *export.ContextError
		inputErr    *assist.InputError
		fieldErr    *resume.FieldError
		valErr      *ErrValidation
		schemaErr   *schemas.ValidationError
		validateErr validator.ValidationErrors
	)
	switch {
	case errors.As(err, &cfgErr):
		return http.StatusServiceUnavailable
	case errors.As(err, &genErr):
		return http.StatusBadGateway
	case errors.As(err, &ctxErr):
		return http.StatusServiceUnavailable
	case errors.Is(err, session.ErrBusy):
		return http.StatusConflict
	case errors.As(err, &inputErr), errors.As(err, &fieldErr), errors.As(err, &valErr),
		errors.As(err, &schemaErr), errors.As(err, &validateErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NotificationFor builds the user-facing notification for an error.
func NotificationFor(err error) Notification {
	var (
		cfgErr    *llm.ConfigurationError
		genErr    *llm.GenerationError
		ctxErr    *export.ContextError
		inputErr  *assist.InputError
		schemaErr *schemas.ValidationError
	)
	switch {
	case errors.As(err, &cfgErr):
		return Notification{Error: "configuration_error", Title: "Configuration Error", Message: cfgErr.Message}
	case errors.As(err, &genErr):
		return Notification{Error: "generation_error", Title: "Error", Message: llm.GenerationFailMessage}
	case errors.As(err, &ctxErr):
		return Notification{Error: "export_context_error", Title: "Export Error", Message: ctxErr.Message}
	case errors.Is(err, session.ErrBusy):
		return Notification{Error: "busy", Title: "Please Wait", Message: "Another generation or export is already in progress."}
	case errors.As(err, &inputErr):
		title := "Invalid Request"
		if inputErr.Field == "jobDescription" {
			title = "Job Description Missing"
		}
		return Notification{Error: "invalid_request", Title: title, Message: inputErr.Message}
	case errors.As(err, &schemaErr):
		msgs := make([]string, 0, len(schemaErr.Errors))
		for _, fe := range schemaErr.Errors {
			msgs = append(msgs, fe.Field+": "+fe.Message)
		}
		return Notification{Error: "invalid_request", Title: "Invalid Resume", Message: strings.Join(msgs, "; ")}
	}

	if HTTPStatus(err) == http.StatusBadRequest {
		return Notification{Error: "invalid_request", Title: "Invalid Request", Message: validationMessage(err)}
	}
	return Notification{Error: "internal_error", Title: "Error", Message: "An unexpected error occurred. Please try again."}
}

// errorResponse writes the notification for err with its mapped status.
func (s *Server) errorResponse(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[server] %d: %v", status, err)
	}
	s.jsonResponse(w, status, NotificationFor(err))
}

// validationMessage turns validator errors into a short message.
func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return err.Error()
}
