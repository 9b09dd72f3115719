package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tboywixxy/yorkshire-global/pkg/validator"
)

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty collection message", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
		assert.True(t, errs.IsEmpty())
	})

	t.Run("accessors", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required", TranslationKey: "emailRequired"})
		errs.Add(validator.ValidationError{Field: "phone", Message: "too long"})
		errs.Add(validator.ValidationError{Field: "email", Message: "invalid"})

		assert.Equal(t, "validation failed: email: is required; phone: too long; email: invalid", errs.Error())
		assert.True(t, errs.Has("email"))
		assert.False(t, errs.Has("message"))
		assert.Equal(t, []string{"is required", "invalid"}, errs.Get("email"))
		assert.Equal(t, []string{"email", "phone"}, errs.Fields())

		first, ok := errs.First("email")
		require.True(t, ok)
		assert.Equal(t, "emailRequired", first.TranslationKey)

		_, ok = errs.First("message")
		assert.False(t, ok)
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("no failures", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("name", "Jane"),
			validator.MaxLenString("name", "Jane", 80),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("email", ""),
			validator.ValidEmail("email", ""),
			validator.RequiredString("name", ""),
		)
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.True(t, validator.IsValidationError(err))
	})
}

func TestApplyFirst(t *testing.T) {
	t.Parallel()

	called := false
	err := validator.ApplyFirst(
		validator.RequiredString("email", "").WithKey("emailRequired"),
		validator.Rule{
			Check: func() bool { called = true; return false },
			Error: validator.ValidationError{Field: "email", Message: "unreachable"},
		},
		validator.RequiredString("name", "").WithKey("fullNameRequired").WithMessage("Full name is required."),
	)

	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 2)
	assert.False(t, called, "rules after a field's first failure must not run")
	assert.Equal(t, "emailRequired", verrs[0].TranslationKey)
	assert.Equal(t, "fullNameRequired", verrs[1].TranslationKey)
	assert.Equal(t, "Full name is required.", verrs[1].Message)
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	verrs := validator.ValidationErrors{{Field: "email", Message: "invalid"}}
	wrapped := fmt.Errorf("%w: %w", validator.ErrValidationFailed, verrs)

	assert.Equal(t, verrs, validator.ExtractValidationErrors(wrapped))
	assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))
	assert.False(t, validator.IsValidationError(nil))
}
