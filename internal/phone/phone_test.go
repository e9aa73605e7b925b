package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zapagenda/zap-confirm/internal/phone"
)

func TestNormalize_EquivalentFormats(t *testing.T) {
	// Every representation of the same national mobile number must
	// produce the identical canonical form.
	inputs := []string{
		"5511987654321",
		"+55 (11) 98765-4321",
		"11987654321",
		"(11) 98765-4321",
		"551187654321",
		"1187654321",
		"11 8765-4321",
	}

	for _, in := range inputs {
		assert.Equal(t, "11987654321", phone.Normalize(in), "input %q", in)
	}
}

func TestNormalize_Landline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"with country code", "551133334444", "1133334444"},
		{"punctuated", "(11) 3333-4444", "1133334444"},
		{"bare", "1133334444", "1133334444"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, phone.Normalize(tt.input))
		})
	}
}

func TestNormalize_UnrecognizedShapes(t *testing.T) {
	// Too short or too long to be a national number: digit-strip only.
	assert.Equal(t, "4321", phone.Normalize("4321"))
	assert.Equal(t, "", phone.Normalize("no digits here"))
	assert.Equal(t, "123456789012345", phone.Normalize("123456789012345"))

	// A 55 prefix is only a country code when the remainder is a valid
	// national length.
	assert.Equal(t, "5533334444", phone.Normalize("5533334444"))
}

func TestForDispatch(t *testing.T) {
	assert.Equal(t, "5511987654321", phone.ForDispatch("(11) 98765-4321"))
	assert.Equal(t, "5511987654321", phone.ForDispatch("5511987654321"))
	assert.Equal(t, "", phone.ForDispatch("---"))
}

func TestSuffix(t *testing.T) {
	assert.Equal(t, "87654321", phone.Suffix("5511987654321"))
	assert.Equal(t, "87654321", phone.Suffix("(11) 98765-4321"))
	assert.Equal(t, "4321", phone.Suffix("43-21"))
	assert.Equal(t, "", phone.Suffix(""))

	// Same suffix regardless of how the number was written.
	assert.Equal(t, phone.Suffix("11987654321"), phone.Suffix("+55 11 8765-4321"))
}
