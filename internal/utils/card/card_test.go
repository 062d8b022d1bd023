package card

import (
	"testing"
)

func TestValidNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   bool
	}{
		{
			name:   "Valid Visa test number",
			number: "4111111111111111",
			want:   true,
		},
		{
			name:   "Valid number 4561261212345467",
			number: "4561261212345467",
			want:   true,
		},
		{
			name:   "Valid number with spaces",
			number: "4561 2612 1234 5467",
			want:   true,
		},
		{
			name:   "Valid number with dashes",
			number: "4561-2612-1234-5467",
			want:   true,
		},
		{
			name:   "Wrong check digit",
			number: "4111111111111112",
			want:   false,
		},
		{
			name:   "Too short for a PAN",
			number: "79927398713",
			want:   false,
		},
		{
			name:   "Too long",
			number: "41111111111111111111",
			want:   false,
		},
		{
			name:   "Empty string",
			number: "",
			want:   false,
		},
		{
			name:   "Contains letters",
			number: "411111111111111a",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidNumber(tt.number); got != tt.want {
				t.Errorf("ValidNumber(%q) = %v, want %v", tt.number, got, tt.want)
			}
		})
	}
}

func TestLast4(t *testing.T) {
	tests := []struct {
		number string
		want   string
	}{
		{"4111111111111111", "1111"},
		{"4561 2612 1234 5467", "5467"},
		{"123", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Last4(tt.number); got != tt.want {
			t.Errorf("Last4(%q) = %q, want %q", tt.number, got, tt.want)
		}
	}
}
