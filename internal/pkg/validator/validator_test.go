package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty("  x  "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("finance@sanadhr.com"))
	assert.True(t, IsValidEmail("a.b+c@example.co.id"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidIqamaNumber(t *testing.T) {
	assert.True(t, IsValidIqamaNumber("2123456789"))
	assert.False(t, IsValidIqamaNumber("1123456789")) // wrong prefix
	assert.False(t, IsValidIqamaNumber("212345678"))  // too short
	assert.False(t, IsValidIqamaNumber("21234567x9"))
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"01", "06", "09", "12"}
	for _, m := range valid {
		assert.True(t, IsValidMonth(m), m)
	}
	invalid := []string{"", "1", "00", "13", "ab", "123"}
	for _, m := range invalid {
		assert.False(t, IsValidMonth(m), m)
	}
}

func TestIsValidYear(t *testing.T) {
	assert.True(t, IsValidYear(2000))
	assert.True(t, IsValidYear(2026))
	assert.True(t, IsValidYear(2100))
	assert.False(t, IsValidYear(1999))
	assert.False(t, IsValidYear(2101))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "must be between 01 and 12"},
		{Field: "client_number", Message: "is required"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "must be between 01 and 12", m["month"])
	assert.Contains(t, errs.Error(), "client_number: is required")
}
