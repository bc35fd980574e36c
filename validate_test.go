package dapputil

import (
	"strings"
	"testing"
)

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{
			name:    "valid checksummed address",
			address: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
			want:    true,
		},
		{
			name:    "another valid checksummed address",
			address: "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
			want:    true,
		},
		{
			name:    "all lowercase skips checksum",
			address: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
			want:    true,
		},
		{
			name:    "all uppercase skips checksum",
			address: "0x5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED",
			want:    true,
		},
		{
			name:    "missing 0x prefix",
			address: "5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
			want:    true,
		},
		{
			name:    "wrong checksum casing",
			address: "0x5Aaeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
			want:    false,
		},
		{
			name:    "too short",
			address: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beae",
			want:    false,
		},
		{
			name:    "too long",
			address: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed0",
			want:    false,
		},
		{
			name:    "non-hex characters",
			address: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaeg",
			want:    false,
		},
		{
			name:    "empty string",
			address: "",
			want:    false,
		},
		{
			name:    "prefix only",
			address: "0x",
			want:    false,
		},
		{
			name:    "excessively long garbage",
			address: strings.Repeat("0xdeadbeef", 1000),
			want:    false,
		},
		{
			name:    "non-address garbage",
			address: "not-an-address",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateAddress(tt.address); got != tt.want {
				t.Errorf("ValidateAddress(%q) = %v, want %v", tt.address, got, tt.want)
			}
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "punctuation stripped",
			input: "Hello, World! 123",
			want:  "Hello World 123",
		},
		{
			name:  "leading and trailing whitespace trimmed",
			input: "   spaced out   ",
			want:  "spaced out",
		},
		{
			name:  "periods and hyphens kept",
			input: "file-name.v2.txt",
			want:  "file-name.v2.txt",
		},
		{
			name:  "underscores kept",
			input: "snake_case_value",
			want:  "snake_case_value",
		},
		{
			name:  "script tags reduced to words",
			input: "<script>alert('x')</script>",
			want:  "scriptalertxscript",
		},
		{
			name:  "stripping cannot leave edge whitespace",
			input: "!! abc",
			want:  "abc",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only disallowed characters",
			input: "!@#$%^&*()",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeInput(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeInput(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := SanitizeInput(got); again != got {
				t.Errorf("SanitizeInput is not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestValidateNumericInput(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		bounds []float64
		want   bool
	}{
		{
			name:   "within bounds",
			value:  "42",
			bounds: []float64{0, 100},
			want:   true,
		},
		{
			name:   "above maximum",
			value:  "150",
			bounds: []float64{0, 100},
			want:   false,
		},
		{
			name:  "not a number",
			value: "abc",
			want:  false,
		},
		{
			name:   "below minimum",
			value:  "-5",
			bounds: []float64{0},
			want:   false,
		},
		{
			name:  "negative without bounds",
			value: "-5",
			want:  true,
		},
		{
			name:   "boundary values are inclusive",
			value:  "100",
			bounds: []float64{0, 100},
			want:   true,
		},
		{
			name:  "decimal value",
			value: "3.14",
			want:  true,
		},
		{
			name:  "surrounding whitespace",
			value: " 42 ",
			want:  true,
		},
		{
			name:  "NaN is rejected",
			value: "NaN",
			want:  false,
		},
		{
			name:  "empty string",
			value: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateNumericInput(tt.value, tt.bounds...); got != tt.want {
				t.Errorf("ValidateNumericInput(%q, %v) = %v, want %v", tt.value, tt.bounds, got, tt.want)
			}
		})
	}
}
