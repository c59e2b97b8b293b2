package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSymbology(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected Symbology
	}{
		{
			name:     "EAN-13",
			code:     "4603934000274",
			expected: SymbologyEAN13,
		},
		{
			name:     "EAN-13 Different Prefix",
			code:     "4870007380032",
			expected: SymbologyEAN13,
		},
		{
			name:     "UPC-A",
			code:     "036000291452",
			expected: SymbologyUPCA,
		},
		{
			name:     "EAN-8",
			code:     "96385074",
			expected: SymbologyEAN8,
		},
		{
			name:     "UPC-E",
			code:     "04252614",
			expected: SymbologyUPCE,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := DetectSymbology(tt.code)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestDetectSymbologyRejectsMalformedCodes(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{name: "Bad Check Digit", code: "4603934000275"},
		{name: "Non Digits", code: "ABC1234567890"},
		{name: "Unsupported Length", code: "1234567"},
		{name: "Empty", code: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DetectSymbology(tt.code)
			assert.Error(t, err)
		})
	}
}

func TestNewSymbology(t *testing.T) {
	symbology, err := NewSymbology(" EAN13 ")
	assert.NoError(t, err)
	assert.Equal(t, SymbologyEAN13, symbology)

	_, err = NewSymbology("qr")
	assert.Error(t, err)
}
