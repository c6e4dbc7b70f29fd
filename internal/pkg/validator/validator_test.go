package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClockMinutes(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"06:00", 360, false},
		{"22:00", 1320, false},
		{"23:59", 1439, false},
		{"14:30", 870, false},
		{"24:00", 0, true},
		{"9:00", 0, true},
		{"09:60", 0, true},
		{"", 0, true},
		{"nine", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClockMinutes(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		assert.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.minutes, got, "input %q", tt.input)
	}
}

func TestIsValidClockTime(t *testing.T) {
	assert.True(t, IsValidClockTime("08:15"))
	assert.True(t, IsValidClockTime("23:00"))
	assert.False(t, IsValidClockTime("24:01"))
	assert.False(t, IsValidClockTime("8:15"))
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("2024-0001"))
	assert.False(t, IsValidEmployeeCode("20240001"))
	assert.False(t, IsValidEmployeeCode("abcd-0001"))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "type", Message: "must be valid"},
	}

	m := errs.ToMap()
	assert.Equal(t, "is required", m["name"])
	assert.Equal(t, "must be valid", m["type"])
	assert.Contains(t, errs.Error(), "name: is required")
}
