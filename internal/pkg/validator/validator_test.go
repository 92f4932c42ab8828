package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("value"))
	assert.False(t, IsEmpty(" value "))
}

func TestIsValidUUID(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidUUID("7f9c24e5-2f8a-4b3d-9c6e-1a2b3c4d5e6f"))
	assert.True(t, IsValidUUID("7F9C24E5-2F8A-4B3D-9C6E-1A2B3C4D5E6F"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID("7f9c24e52f8a4b3d9c6e1a2b3c4d5e6f"))
	assert.False(t, IsValidUUID(""))
}

func TestIsNumeric(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNumeric("12345"))
	assert.False(t, IsNumeric("12a45"))
	assert.False(t, IsNumeric("-1"))
	assert.False(t, IsNumeric(""))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	d, ok := IsValidDate("2025-03-03")
	assert.True(t, ok)
	assert.Equal(t, 2025, d.Year())

	_, ok = IsValidDate("03-03-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	t.Parallel()

	values := []string{"day", "evening", "night"}
	assert.True(t, IsInSlice("day", values))
	assert.False(t, IsInSlice("off", values))
	assert.False(t, IsInSlice("Day", values))
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "start_date", Message: "start_date is required"},
		{Field: "end_date", Message: "end_date is required"},
	}

	assert.Equal(t, "start_date: start_date is required; end_date: end_date is required", errs.Error())
	assert.Equal(t, map[string]string{
		"start_date": "start_date is required",
		"end_date":   "end_date is required",
	}, errs.ToMap())
}
