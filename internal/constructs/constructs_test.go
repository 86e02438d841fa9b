package constructs

import (
	"testing"

	"github.com/tony-montemuro/minihttp/internal/assert"
)

func TestEqualFold(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected bool
	}{
		{
			name:     "Identical",
			a:        "GET",
			b:        "GET",
			expected: true,
		},
		{
			name:     "Different case",
			a:        "get",
			b:        "GET",
			expected: true,
		},
		{
			name:     "Mixed case",
			a:        "pOsT",
			b:        "POST",
			expected: true,
		},
		{
			name:     "Different length",
			a:        "GE",
			b:        "GET",
			expected: false,
		},
		{
			name:     "Different letters",
			a:        "PUT",
			b:        "GET",
			expected: false,
		},
		{
			name:     "Non-letters are compared exactly",
			a:        "[",
			b:        "{",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, EqualFold([]byte(tt.a), []byte(tt.b)), tt.expected)
		})
	}
}
