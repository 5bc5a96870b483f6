package util

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  time.Duration
		wantError bool
	}{
		{
			name:     "bare integer is minutes",
			input:    "45",
			expected: 45 * time.Minute,
		},
		{
			name:     "zero",
			input:    "0",
			expected: 0,
		},
		{
			name:     "seconds",
			input:    "90s",
			expected: 90 * time.Second,
		},
		{
			name:     "minutes",
			input:    "15m",
			expected: 15 * time.Minute,
		},
		{
			name:     "hours and minutes",
			input:    "1h30m",
			expected: 1*time.Hour + 30*time.Minute,
		},
		{
			name:      "garbage",
			input:     "abc",
			wantError: true,
		},
		{
			name:      "empty string",
			input:     "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.input)

			if tt.wantError {
				if err == nil {
					t.Errorf("ParseDuration(%q) expected error but got none", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("ParseDuration(%q) unexpected error: %v", tt.input, err)
				return
			}

			if got != tt.expected {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
