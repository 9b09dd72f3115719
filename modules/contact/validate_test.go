package contact_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tboywixxy/yorkshire-global/modules/contact"
	"github.com/tboywixxy/yorkshire-global/pkg/validator"
)

func kindOf(verr *validator.ValidationError) string {
	if verr == nil {
		return ""
	}
	return verr.TranslationKey
}

func TestFieldValidators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		validate func(string) *validator.ValidationError
		value    string
		want     string
	}{
		{"full name ok", contact.ValidateFullName, "Jane Doe", ""},
		{"full name blank", contact.ValidateFullName, "   ", contact.KindFullNameRequired},
		{"full name 80 runes", contact.ValidateFullName, strings.Repeat("é", 80), ""},
		{"full name 81 runes", contact.ValidateFullName, strings.Repeat("é", 81), contact.KindFullNameMax},
		{"full name trimmed before counting", contact.ValidateFullName, "  " + strings.Repeat("a", 80) + "  ", ""},

		{"email ok", contact.ValidateEmail, "jane@acme.com", ""},
		{"email blank", contact.ValidateEmail, "", contact.KindEmailRequired},
		{"email too long", contact.ValidateEmail, strings.Repeat("a", 110) + "@example.com", contact.KindEmailMax},
		{"email without tld", contact.ValidateEmail, "jane@acme", contact.KindEmailInvalid},
		{"email short tld", contact.ValidateEmail, "jane@acme.c", contact.KindEmailInvalid},
		{"email with space", contact.ValidateEmail, "ja ne@acme.com", contact.KindEmailInvalid},

		{"phone ok", contact.ValidatePhone, "+1 416 555 0123", ""},
		{"phone with parens", contact.ValidatePhone, "(416) 555-0123", ""},
		{"phone blank", contact.ValidatePhone, "", contact.KindPhoneRequired},
		{"phone too long", contact.ValidatePhone, strings.Repeat("1", 25), contact.KindPhoneMax},
		{"phone seven digits", contact.ValidatePhone, "555-0123", ""},
		{"phone six digits", contact.ValidatePhone, "555-01", contact.KindPhoneInvalid},
		{"phone sixteen digits", contact.ValidatePhone, "1234567890123456", contact.KindPhoneInvalid},
		{"phone letters", contact.ValidatePhone, "416-555-CALL", contact.KindPhoneInvalid},
		{"phone inner plus", contact.ValidatePhone, "1+4165550123", contact.KindPhoneInvalid},

		{"organization ok", contact.ValidateOrganization, "Acme Inc", ""},
		{"organization blank", contact.ValidateOrganization, "", contact.KindCompanyRequired},
		{"organization too long", contact.ValidateOrganization, strings.Repeat("x", 61), contact.KindCompanyMax},

		{"service ok", contact.ValidateService, "cybersecurity", ""},
		{"service trimmed", contact.ValidateService, " strategy ", ""},
		{"service blank", contact.ValidateService, "", contact.KindServiceRequired},
		{"service unknown", contact.ValidateService, "plumbing", contact.KindServiceRequired},
		{"service wrong case", contact.ValidateService, "SSDLC", contact.KindServiceRequired},

		{"message ok", contact.ValidateMessage, "Need a risk assessment.", ""},
		{"message blank", contact.ValidateMessage, "\n\t ", contact.KindMessageRequired},
		{"message 200 words", contact.ValidateMessage, strings.TrimSpace(strings.Repeat("word ", 200)), ""},
		{"message 201 words", contact.ValidateMessage, strings.TrimSpace(strings.Repeat("word ", 201)), contact.KindMessageWordsMax},
		{"message 1400 chars", contact.ValidateMessage, strings.Repeat("a", 1400), ""},
		{"message 1401 chars", contact.ValidateMessage, strings.Repeat("a", 1401), contact.KindMessageCharsMax},
		{"message too many words reported first", contact.ValidateMessage, strings.Repeat("ab ", 500), contact.KindMessageWordsMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.validate(tt.value)
			assert.Equal(t, tt.want, kindOf(got))
			if got != nil {
				assert.NotEmpty(t, got.Message)
				assert.NotEmpty(t, got.Field)
			}
		})
	}
}

func validSubmission() contact.Submission {
	return contact.Submission{
		FullName:       "Jane Doe",
		Email:          "jane@acme.com",
		Phone:          "+1 416 555 0123",
		Organization:   "Acme Inc",
		Service:        contact.ServiceCybersecurity,
		Message:        "Need a risk assessment.",
		TurnstileToken: "valid-token",
	}
}

func TestValidateFields(t *testing.T) {
	t.Parallel()

	t.Run("valid submission", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, contact.ValidateFields(validSubmission()))
	})

	t.Run("one error per field in field order", func(t *testing.T) {
		t.Parallel()
		s := validSubmission()
		s.Email = ""
		s.Message = strings.Repeat("a", 2000)
		s.FullName = strings.Repeat("n", 100)

		verrs := contact.ValidateFields(s)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{contact.FieldFullName, contact.FieldEmail, contact.FieldMessage}, verrs.Fields())
		first, ok := verrs.First(contact.FieldEmail)
		require.True(t, ok)
		assert.Equal(t, contact.KindEmailRequired, first.TranslationKey)
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		s := validSubmission()
		s.Phone = "abc"
		assert.Equal(t, contact.ValidateFields(s), contact.ValidateFields(s))
	})
}

func TestMissingFields(t *testing.T) {
	t.Parallel()

	assert.Empty(t, contact.MissingFields(validSubmission()))

	s := validSubmission()
	s.Phone = "  "
	s.Service = ""
	assert.Equal(t, []string{contact.FieldPhone, contact.FieldService}, contact.MissingFields(s))

	assert.Equal(t, []string{
		contact.FieldFullName,
		contact.FieldEmail,
		contact.FieldPhone,
		contact.FieldOrganization,
		contact.FieldService,
		contact.FieldMessage,
	}, contact.MissingFields(contact.Submission{}))
}

func TestServiceLabel(t *testing.T) {
	t.Parallel()

	for _, key := range contact.ServiceKeys() {
		assert.NotEmpty(t, contact.ServiceLabel(key))
		assert.Nil(t, contact.ValidateService(key), key)
	}
	assert.Equal(t, "Cybersecurity", contact.ServiceLabel(contact.ServiceCybersecurity))
	assert.Equal(t, "unknown", contact.ServiceLabel("unknown"))
}
