package minihttp

import (
	"testing"

	"github.com/tony-montemuro/minihttp/internal/assert"
)

func TestHeaders_Get(t *testing.T) {
	headers := Headers{
		{Name: "A", Value: "1"},
		{Name: "a", Value: "lower"},
		{Name: "A", Value: "2"},
		{Name: "Empty", Value: ""},
	}

	tests := []struct {
		name          string
		header        string
		expected      string
		expectedFound bool
	}{
		{
			name:          "First of duplicates",
			header:        "A",
			expected:      "1",
			expectedFound: true,
		},
		{
			name:          "Case sensitive",
			header:        "a",
			expected:      "lower",
			expectedFound: true,
		},
		{
			name:          "Present but empty",
			header:        "Empty",
			expected:      "",
			expectedFound: true,
		},
		{
			name:          "Missing",
			header:        "B",
			expected:      "",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, found := headers.Get(tt.header)
			assert.Equal(t, value, tt.expected)
			assert.Equal(t, found, tt.expectedFound)
		})
	}
}
