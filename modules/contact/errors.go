package contact

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tboywixxy/yorkshire-global/handler"
	"github.com/tboywixxy/yorkshire-global/pkg/validator"
)

var (
	ErrInvalidPayload       = errors.New("contact: invalid payload")
	ErrVerificationRequired = errors.New("contact: verification required")
	ErrVerificationFailed   = errors.New("contact: verification failed")
	ErrBlocked              = errors.New("contact: submission blocked")
	ErrMissingFields        = errors.New("contact: missing required fields")
	ErrValidation           = errors.New("contact: validation failed")
	ErrNotConfigured        = errors.New("contact: service not configured")
	ErrDispatch             = errors.New("contact: email dispatch failed")
)

// MissingFieldsError lists the required fields that were left blank.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return ErrMissingFields.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingFields
}

// Public errors. Keys double as translation keys in locales/*.yaml.
var (
	errPublicPayload              = handler.NewHTTPError(http.StatusBadRequest, "errors.invalidPayload", "Invalid request.")
	errPublicVerificationRequired = handler.NewHTTPError(http.StatusBadRequest, "errors.verificationRequired", "Verification required.")
	errPublicVerificationFailed   = handler.NewHTTPError(http.StatusForbidden, "errors.verificationFailed", "Verification failed. Please try again.")
	errPublicBlocked              = handler.NewHTTPError(http.StatusBadRequest, "errors.blocked", "Submission blocked.")
	errPublicMissingFields        = handler.NewHTTPError(http.StatusBadRequest, "errors.missingFields", "Missing required fields.")
	errPublicServer               = handler.NewHTTPError(http.StatusInternalServerError, "errors.server", "Server error.")
)

// ClassifyError maps contact errors to their public HTTP form. Configuration
// and dispatch failures share one generic message.
func ClassifyError(err error) (handler.HTTPError, bool) {
	switch {
	case err == nil:
		return handler.HTTPError{}, false
	case errors.Is(err, ErrInvalidPayload):
		return errPublicPayload.WithCause(err), true
	case errors.Is(err, ErrVerificationRequired):
		return errPublicVerificationRequired.WithCause(err), true
	case errors.Is(err, ErrVerificationFailed):
		return errPublicVerificationFailed.WithCause(err), true
	case errors.Is(err, ErrBlocked):
		return errPublicBlocked.WithCause(err), true
	case errors.Is(err, ErrMissingFields):
		httpErr := errPublicMissingFields.WithCause(err)
		var mf *MissingFieldsError
		if errors.As(err, &mf) {
			httpErr = httpErr.WithDetails(missingDetails(mf.Fields))
		}
		return httpErr, true
	case errors.Is(err, ErrValidation):
		return validationHTTPError(err), true
	case errors.Is(err, ErrNotConfigured), errors.Is(err, ErrDispatch):
		return errPublicServer.WithCause(err), true
	}
	return handler.HTTPError{}, false
}

func validationHTTPError(err error) handler.HTTPError {
	verrs := validator.ExtractValidationErrors(err)
	if len(verrs) == 0 {
		return handler.HTTPError{
			Code:    http.StatusBadRequest,
			Key:     "validation_failed",
			Message: "Validation failed.",
			Err:     err,
		}
	}
	first := verrs[0]
	return handler.HTTPError{
		Code:    http.StatusBadRequest,
		Key:     "errors." + first.TranslationKey,
		Message: first.Message,
		Details: handler.ValidationDetails(verrs),
		Err:     err,
	}
}

func missingDetails(fields []string) map[string][]string {
	details := make(map[string][]string, len(fields))
	for _, f := range fields {
		details[f] = []string{requiredKinds[f]}
	}
	return details
}
