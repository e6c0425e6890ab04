package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bluecheck/pkg/validator"
)

func TestNRB(t *testing.T) {
	t.Parallel()

	t.Run("valid numbers in any layout", func(t *testing.T) {
		valid := []string{
			"42249000057255503346698354",
			"42 2490 0005 7255 5033 4669 8354",
			"42-2490-0005-7255-5033-4669-8354",
		}
		for _, nrb := range valid {
			assert.True(t, validator.NRB(nrb), "NRB should be valid: %s", nrb)
		}
	})

	t.Run("invalid numbers", func(t *testing.T) {
		invalid := []string{
			"",
			"4224900005725550334669835",
			"422490000572555033466983544",
			"42549000057255503346693354",
			"42249000057255503346698355",
			"4224900005725550334669835a",
			"PL42249000057255503346698354",
		}
		for _, nrb := range invalid {
			assert.False(t, validator.NRB(nrb), "NRB should be invalid: %s", nrb)
		}
	})

	t.Run("every single digit change is detected", func(t *testing.T) {
		const nrb = "42249000057255503346698354"
		for i := range len(nrb) {
			altered := []byte(nrb)
			altered[i] = '0' + (altered[i]-'0'+1)%10
			assert.False(t, validator.NRB(string(altered)), "altered position %d: %s", i, altered)
		}
	})
}

func TestIBAN(t *testing.T) {
	t.Parallel()

	t.Run("valid numbers", func(t *testing.T) {
		valid := []string{
			"PL67249076002100555998070117",
			"67249076002100555998070117",
			"PL66249022982522",
			"PL102490405804037964617707221535",
			"102490405804037964617707221535",
			"1024-9040-5804-0379-6461-7707-2215-35",
			"pl67 2490 7600 2100 5559 9807 0117",
			"PL67.2490.7600.2100.5559.9807.0117",
			"PL67|2490/7600,2100_5559 9807-0117",
			"DE89370400440532013000",
			"GB82WEST12345698765432",
		}
		for _, iban := range valid {
			assert.True(t, validator.IBAN(iban), "IBAN should be valid: %s", iban)
		}
	})

	t.Run("invalid numbers", func(t *testing.T) {
		invalid := []string{
			"",
			"P",
			"PL67",
			"PB67249076002100555998070117",
			"PL66249022982527",
			"102490405804037964617707221539",
			"PL67249076002100555998070118",
			"PL67249076002100555998070117!",
			"PL6724907600210055599807011ś",
		}
		for _, iban := range invalid {
			assert.False(t, validator.IBAN(iban), "IBAN should be invalid: %s", iban)
		}
	})

	t.Run("last digit change is detected", func(t *testing.T) {
		const iban = "PL67249076002100555998070117"
		for d := byte('0'); d <= '9'; d++ {
			if d == iban[len(iban)-1] {
				continue
			}
			altered := iban[:len(iban)-1] + string(d)
			assert.False(t, validator.IBAN(altered), altered)
		}
	})

	t.Run("non-ASCII lookalikes are rejected", func(t *testing.T) {
		lookalikes := []string{
			"GB82WE\u017fT12345698765432",
			"gb82we\u017ft12345698765432",
			"GB82WEST12345698765432\u0131",
			"DE89370400440532013000\u212a",
		}
		for _, iban := range lookalikes {
			assert.False(t, validator.IBAN(iban), "IBAN should be invalid: %q", iban)
		}
		assert.True(t, validator.IBAN("gb82west12345698765432"))
	})

	t.Run("custom separators", func(t *testing.T) {
		iban := "PL67:2490:7600:2100:5559:9807:0117"
		assert.False(t, validator.IBAN(iban))
		assert.True(t, validator.IBAN(iban, validator.WithIBANSeparators(":")))
		assert.False(t, validator.IBAN("PL67 2490 7600 2100 5559 9807 0117", validator.WithIBANSeparators(":")))
	})

	t.Run("default country", func(t *testing.T) {
		const german = "89370400440532013000"
		assert.False(t, validator.IBAN(german))
		assert.True(t, validator.IBAN(german, validator.WithDefaultCountry("de")))
		assert.False(t, validator.IBAN(german, validator.WithDefaultCountry("DEU")), "invalid code keeps PL")
		assert.True(t, validator.IBAN("67249076002100555998070117", validator.WithDefaultCountry("\u017fe")), "lookalike code keeps PL")
	})
}

// Chunked reduction must agree with a digit-by-digit reduction for any input.
func TestIBANChunkingMatchesDigitwiseReduction(t *testing.T) {
	t.Parallel()

	ibans := []string{
		"PL67249076002100555998070117",
		"PL66249022982522",
		"PL102490405804037964617707221535",
		"DE89370400440532013000",
		"GB82WEST12345698765432",
	}
	for _, iban := range ibans {
		rearranged := iban[4:] + iban[:4]
		remainder := 0
		for _, r := range rearranged {
			var code int
			if r >= 'A' && r <= 'Z' {
				code = int(r-'A') + 10
				remainder = (remainder*100 + code) % 97
				continue
			}
			remainder = (remainder*10 + int(r-'0')) % 97
		}
		assert.Equal(t, 1, remainder, iban)
		assert.True(t, validator.IBAN(iban), iban)
	}
}

func TestBankAccountRules(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.ValidNRB("account", "42 2490 0005 7255 5033 4669 8354"),
		validator.ValidIBAN("iban", "89370400440532013000", validator.WithDefaultCountry("DE")),
	)
	assert.NoError(t, err)

	err = validator.Apply(
		validator.ValidNRB("account", "42549000057255503346693354"),
		validator.ValidIBAN("iban", "PB67249076002100555998070117"),
	)
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 2)
	assert.True(t, verrs.Has("account"))
	assert.True(t, verrs.Has("iban"))
	assert.Equal(t, "validation.iban", verrs.GetErrors("iban")[0].TranslationKey)
	assert.True(t, strings.HasPrefix(err.Error(), "validation failed: "))
}

func BenchmarkNRB(b *testing.B) {
	for b.Loop() {
		validator.NRB("42 2490 0005 7255 5033 4669 8354")
	}
}

func BenchmarkIBAN(b *testing.B) {
	for b.Loop() {
		validator.IBAN("PL67 2490 7600 2100 5559 9807 0117")
	}
}
