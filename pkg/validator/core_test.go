package validator_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bluecheck/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "nip", Message: "must be a valid NIP number"})
		assert.Equal(t, "validation failed: nip: must be a valid NIP number", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "nip", Message: "invalid"})
		errs.Add(validator.ValidationError{Field: "pesel", Message: "invalid"})
		assert.Equal(t, "validation failed: nip: invalid; pesel: invalid", errs.Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "account", Message: "must be a valid NRB account number", TranslationKey: "validation.nrb"},
		{Field: "iban", Message: "must be a valid IBAN", TranslationKey: "validation.iban"},
		{Field: "account", Message: "must be at most 26 characters long", TranslationKey: "validation.length"},
	}

	t.Run("Has", func(t *testing.T) {
		assert.True(t, errs.Has("account"))
		assert.True(t, errs.Has("iban"))
		assert.False(t, errs.Has("nip"))
	})

	t.Run("Get returns messages in order", func(t *testing.T) {
		assert.Equal(t, []string{
			"must be a valid NRB account number",
			"must be at most 26 characters long",
		}, errs.Get("account"))
		assert.Empty(t, errs.Get("nip"))
	})

	t.Run("GetErrors returns full errors", func(t *testing.T) {
		got := errs.GetErrors("account")
		require.Len(t, got, 2)
		assert.Equal(t, "validation.nrb", got[0].TranslationKey)
		assert.Equal(t, "validation.length", got[1].TranslationKey)
	})

	t.Run("Fields are unique and ordered", func(t *testing.T) {
		assert.Equal(t, []string{"account", "iban"}, errs.Fields())
		assert.Empty(t, validator.ValidationErrors{}.Fields())
	})

	t.Run("IsEmpty", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())
		assert.True(t, validator.ValidationErrors{}.IsEmpty())
	})
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidNIP("nip", "4878280798"),
			validator.ValidPostcode("postcode", "42-400"),
		)
		assert.NoError(t, err)
	})

	t.Run("handles empty rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidNIP("nip", "4874280798"),
			validator.ValidPostcode("postcode", "42-400"),
			validator.ValidPESEL("pesel", "93789452112"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"nip", "pesel"}, verrs.Fields())
	})

	t.Run("custom rule", func(t *testing.T) {
		rule := validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: "custom", Message: "always fails"},
		}
		err := validator.Apply(rule)
		assert.EqualError(t, err, "validation failed: custom: always fails")
	})
}

func TestValidationErrorsMatching(t *testing.T) {
	err := validator.Apply(validator.ValidNRB("account", "123"))
	require.Error(t, err)

	t.Run("errors.Is matches sentinel", func(t *testing.T) {
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.NotErrorIs(t, err, validator.ErrOutOfRange)
	})

	t.Run("survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("import row 3: %w", err)
		assert.True(t, validator.IsValidationError(wrapped))
		verrs := validator.ExtractValidationErrors(wrapped)
		require.Len(t, verrs, 1)
		assert.Equal(t, "account", verrs[0].Field)
	})

	t.Run("plain errors", func(t *testing.T) {
		assert.False(t, validator.IsValidationError(errors.New("boom")))
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.False(t, validator.IsValidationError(nil))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})
}

type upperTranslator struct {
	known map[string]string
}

func (u upperTranslator) T(_, key string, args ...string) string {
	tmpl, ok := u.known[key]
	if !ok {
		return key
	}
	for i := 0; i+1 < len(args); i += 2 {
		tmpl = strings.ReplaceAll(tmpl, "%{"+args[i]+"}", args[i+1])
	}
	return strings.ToUpper(tmpl)
}

func TestLocalize(t *testing.T) {
	tr := upperTranslator{known: map[string]string{
		"validation.step": "%{field} needs step %{step}",
	}}

	err := validator.Apply(
		validator.ValidStep("qty", "12", "5", ""),
		validator.ValidPESEL("pesel", "1"),
	)
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 2)

	t.Run("uses translation with substituted values", func(t *testing.T) {
		assert.Equal(t, "QTY NEEDS STEP 5", verrs[0].Localize(tr, "en"))
	})

	t.Run("falls back to message for missing keys", func(t *testing.T) {
		assert.Equal(t, "must be a valid PESEL number", verrs[1].Localize(tr, "en"))
	})

	t.Run("nil translator", func(t *testing.T) {
		assert.Equal(t, "must be a valid PESEL number", verrs[1].Localize(nil, "en"))
	})

	t.Run("groups by field", func(t *testing.T) {
		assert.Equal(t, map[string][]string{
			"qty":   {"QTY NEEDS STEP 5"},
			"pesel": {"must be a valid PESEL number"},
		}, verrs.Localize(tr, "en"))
	})
}
