package validator

import "errors"

// ErrValidationFailed is the sentinel callers wrap around ValidationErrors
// when they need errors.Is classification.
var ErrValidationFailed = errors.New("validation failed")
