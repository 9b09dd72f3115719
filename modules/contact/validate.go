package contact

import (
	"fmt"
	"strings"

	"github.com/tboywixxy/yorkshire-global/pkg/validator"
)

// Field limits. Lengths are counted in Unicode code points.
const (
	MaxFullNameLen     = 80
	MaxEmailLen        = 120
	MaxPhoneLen        = 24
	MaxOrganizationLen = 60
	MaxMessageWords    = 200
	MaxMessageChars    = 1400
	MinPhoneDigits     = 7
	MaxPhoneDigits     = 15
)

// JSON field names, used as keys in error details.
const (
	FieldFullName       = "fullName"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldOrganization   = "organization"
	FieldService        = "service"
	FieldMessage        = "message"
	FieldCompanyWebsite = "companyWebsite"
)

// Error kinds. Each is a translation key under "errors." in the locale files.
const (
	KindFullNameRequired = "fullNameRequired"
	KindFullNameMax      = "fullNameMax"
	KindEmailRequired    = "emailRequired"
	KindEmailMax         = "emailMax"
	KindEmailInvalid     = "emailInvalid"
	KindPhoneRequired    = "phoneRequired"
	KindPhoneMax         = "phoneMax"
	KindPhoneInvalid     = "phoneInvalid"
	KindCompanyRequired  = "companyRequired"
	KindCompanyMax       = "companyMax"
	KindServiceRequired  = "serviceRequired"
	KindMessageRequired  = "messageRequired"
	KindMessageWordsMax  = "messageWordsMax"
	KindMessageCharsMax  = "messageCharsMax"
)

// requiredFields lists the fields checked for presence, in report order.
var requiredFields = []string{
	FieldFullName,
	FieldEmail,
	FieldPhone,
	FieldOrganization,
	FieldService,
	FieldMessage,
}

var requiredKinds = map[string]string{
	FieldFullName:     KindFullNameRequired,
	FieldEmail:        KindEmailRequired,
	FieldPhone:        KindPhoneRequired,
	FieldOrganization: KindCompanyRequired,
	FieldService:      KindServiceRequired,
	FieldMessage:      KindMessageRequired,
}

// ValidateFullName checks presence and length.
func ValidateFullName(v string) *validator.ValidationError {
	v = strings.TrimSpace(v)
	return firstError(validator.ApplyFirst(
		validator.RequiredString(FieldFullName, v).
			WithKey(KindFullNameRequired).
			WithMessage("Full name is required."),
		validator.MaxLenString(FieldFullName, v, MaxFullNameLen).
			WithKey(KindFullNameMax).
			WithMessage(fmt.Sprintf("Full name must be at most %d characters.", MaxFullNameLen)),
	))
}

// ValidateEmail checks presence, length and the local@domain.tld shape.
func ValidateEmail(v string) *validator.ValidationError {
	v = strings.TrimSpace(v)
	return firstError(validator.ApplyFirst(
		validator.RequiredString(FieldEmail, v).
			WithKey(KindEmailRequired).
			WithMessage("Email is required."),
		validator.MaxLenString(FieldEmail, v, MaxEmailLen).
			WithKey(KindEmailMax).
			WithMessage(fmt.Sprintf("Email must be at most %d characters.", MaxEmailLen)),
		validator.ValidEmail(FieldEmail, v).
			WithKey(KindEmailInvalid).
			WithMessage("Please enter a valid email address."),
	))
}

// undeliverableEmail is reported for an address that passes ValidateEmail
// but cannot be used in a mail header.
func undeliverableEmail() validator.ValidationError {
	return validator.ValidationError{
		Field:          FieldEmail,
		Message:        "Please enter a valid email address.",
		TranslationKey: KindEmailInvalid,
	}
}

// ValidatePhone checks presence, length, allowed characters and digit count.
func ValidatePhone(v string) *validator.ValidationError {
	v = strings.TrimSpace(v)
	return firstError(validator.ApplyFirst(
		validator.RequiredString(FieldPhone, v).
			WithKey(KindPhoneRequired).
			WithMessage("Phone number is required."),
		validator.MaxLenString(FieldPhone, v, MaxPhoneLen).
			WithKey(KindPhoneMax).
			WithMessage(fmt.Sprintf("Phone number must be at most %d characters.", MaxPhoneLen)),
		validator.ValidPhone(FieldPhone, v, MinPhoneDigits, MaxPhoneDigits).
			WithKey(KindPhoneInvalid).
			WithMessage("Please enter a valid phone number."),
	))
}

// ValidateOrganization checks presence and length.
func ValidateOrganization(v string) *validator.ValidationError {
	v = strings.TrimSpace(v)
	return firstError(validator.ApplyFirst(
		validator.RequiredString(FieldOrganization, v).
			WithKey(KindCompanyRequired).
			WithMessage("Company name is required."),
		validator.MaxLenString(FieldOrganization, v, MaxOrganizationLen).
			WithKey(KindCompanyMax).
			WithMessage(fmt.Sprintf("Company name must be at most %d characters.", MaxOrganizationLen)),
	))
}

// ValidateService accepts only the known service keys.
func ValidateService(v string) *validator.ValidationError {
	v = strings.TrimSpace(v)
	return firstError(validator.ApplyFirst(
		validator.InList(FieldService, v, serviceKeys).
			WithKey(KindServiceRequired).
			WithMessage("Please select a service."),
	))
}

// ValidateMessage checks presence, word count and character count.
func ValidateMessage(v string) *validator.ValidationError {
	v = strings.TrimSpace(v)
	return firstError(validator.ApplyFirst(
		validator.RequiredString(FieldMessage, v).
			WithKey(KindMessageRequired).
			WithMessage("Message is required."),
		validator.MaxWords(FieldMessage, v, MaxMessageWords).
			WithKey(KindMessageWordsMax).
			WithMessage(fmt.Sprintf("Message must be at most %d words.", MaxMessageWords)),
		validator.MaxLenString(FieldMessage, v, MaxMessageChars).
			WithKey(KindMessageCharsMax).
			WithMessage(fmt.Sprintf("Message must be at most %d characters.", MaxMessageChars)),
	))
}

// ValidateFields runs every field validator and returns the failures in
// field order, at most one per field. It returns nil when s is valid.
func ValidateFields(s Submission) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, verr := range []*validator.ValidationError{
		ValidateFullName(s.FullName),
		ValidateEmail(s.Email),
		ValidatePhone(s.Phone),
		ValidateOrganization(s.Organization),
		ValidateService(s.Service),
		ValidateMessage(s.Message),
	} {
		if verr != nil {
			errs.Add(*verr)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// MissingFields returns the required fields that are blank after trimming.
func MissingFields(s Submission) []string {
	values := map[string]string{
		FieldFullName:     s.FullName,
		FieldEmail:        s.Email,
		FieldPhone:        s.Phone,
		FieldOrganization: s.Organization,
		FieldService:      s.Service,
		FieldMessage:      s.Message,
	}
	var missing []string
	for _, f := range requiredFields {
		if strings.TrimSpace(values[f]) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

func firstError(err error) *validator.ValidationError {
	verrs := validator.ExtractValidationErrors(err)
	if len(verrs) == 0 {
		return nil
	}
	e := verrs[0]
	return &e
}
