package strutil_test

import (
	"testing"

	"strhelpers/pkg/strutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "mixed string", input: "abc123def", want: "123"},
		{name: "only digits", input: "12345", want: "12345"},
		{name: "no digits", input: "no digits here", want: ""},
		{name: "special characters", input: "@#123$%", want: "123"},
		{name: "surrounding spaces", input: " 123 ", want: "123"},
		{name: "interspersed letters", input: "1a2b3c", want: "123"},
		{name: "decimal point dropped", input: "12.34", want: "1234"},
		{name: "sign dropped", input: "-42", want: "42"},
		{name: "non ascii digits dropped", input: "٣4", want: "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := strutil.ExtractDigits(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractDigits_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   "} {
		_, err := strutil.ExtractDigits(input)
		assert.ErrorIs(t, err, strutil.ErrEmptyInput)
		assert.EqualError(t, err, "String not provided")
	}
}

func TestExtractDigitsValue_ChecksTypeFirst(t *testing.T) {
	for _, v := range []any{nil, 123, map[string]any{"key": "value"}, []any{1, 2, 3}} {
		_, err := strutil.ExtractDigitsValue(v)
		assert.ErrorIs(t, err, strutil.ErrTypeMismatch)
		assert.EqualError(t, err, "Not a string")
	}

	_, err := strutil.ExtractDigitsValue("  ")
	assert.ErrorIs(t, err, strutil.ErrEmptyInput)

	got, err := strutil.ExtractDigitsValue("a1b2")
	require.NoError(t, err)
	assert.Equal(t, "12", got)
}
