package lws

import (
	"testing"

	"github.com/tony-montemuro/minihttp/internal/assert"
)

func TestIsFold(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{
			name:     "Space continuation",
			line:     " continued",
			expected: true,
		},
		{
			name:     "Tab continuation",
			line:     "\tcontinued",
			expected: true,
		},
		{
			name:     "Regular header",
			line:     "Host: example.com",
			expected: false,
		},
		{
			name:     "Empty line",
			line:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, IsFold([]byte(tt.line)), tt.expected)
		})
	}
}
