package contactform

import "errors"

var (
	ErrBusy            = errors.New("contactform: a submission is already in progress")
	ErrBlocked         = errors.New("contactform: submission blocked")
	ErrInvalid         = errors.New("contactform: form has invalid fields")
	ErrCaptchaRequired = errors.New("contactform: verification token missing")
	ErrRejected        = errors.New("contactform: server rejected the submission")
	ErrNetwork         = errors.New("contactform: request failed")
	ErrUnknownField    = errors.New("contactform: unknown field")
)
