package validation_test

import (
	"testing"

	"github.com/YDahdah/Nectar/internal/validation"

	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		desc     string
		input    string
		expected string
	}{
		{
			desc:     "bare local number gets country code",
			input:    "71234567",
			expected: "+96171234567",
		},
		{
			desc:     "trunk prefix is replaced by country code",
			input:    "071234567",
			expected: "+96171234567",
		},
		{
			desc:     "country code without plus",
			input:    "96171234567",
			expected: "+96171234567",
		},
		{
			desc:     "already canonical",
			input:    "+96171234567",
			expected: "+96171234567",
		},
		{
			desc:     "plus prefixed keeps foreign country code",
			input:    "+1 (555) 123-4567",
			expected: "+15551234567",
		},
		{
			desc:     "whitespace and separators are stripped",
			input:    " 03 123 456 ",
			expected: "+9613123456",
		},
		{
			desc:     "dashes in local number",
			input:    "71-234-567",
			expected: "+96171234567",
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			got, err := validation.NormalizePhone(tC.input)
			require.NoError(t, err)
			require.Equal(t, tC.expected, got)
		})
	}
}

func TestNormalizePhone_Empty(t *testing.T) {
	_, err := validation.NormalizePhone("")
	require.ErrorIs(t, err, validation.ErrEmptyPhone)

	_, err = validation.NormalizePhone("   ")
	require.ErrorIs(t, err, validation.ErrEmptyPhone)
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	inputs := []string{"71234567", "03123456", "96171234567", "+4915112345678"}

	for _, input := range inputs {
		once, err := validation.NormalizePhone(input)
		require.NoError(t, err)

		twice, err := validation.NormalizePhone(once)
		require.NoError(t, err)
		require.Equal(t, once, twice)
	}
}
