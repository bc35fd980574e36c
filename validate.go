package dapputil

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// disallowedRunes matches every rune that is not a word character,
// whitespace, period, or hyphen.
var disallowedRunes = regexp.MustCompile(`[^\w\s.-]+`)

// ValidateAddress reports whether address is a syntactically valid Ethereum
// account address: 40 hexadecimal characters with an optional 0x prefix.
// A mixed-case hex part must additionally carry a correct EIP-55 checksum;
// uniformly lower- or upper-cased addresses are accepted without one.
//
// The function never panics. Any panic raised by the underlying address
// routines is recovered and reported as false.
func ValidateAddress(address string) (valid bool) {
	defer func() {
		if recover() != nil {
			valid = false
		}
	}()
	defer func() { recordValidation(context.Background(), "address", valid) }()

	if !common.IsHexAddress(address) {
		return false
	}

	hexPart := address
	if len(hexPart) >= 2 && (hexPart[:2] == "0x" || hexPart[:2] == "0X") {
		hexPart = hexPart[2:]
	}
	if hexPart == strings.ToLower(hexPart) || hexPart == strings.ToUpper(hexPart) {
		return true
	}

	// Mixed case encodes an EIP-55 checksum; Hex re-derives the canonical
	// casing for comparison.
	return common.HexToAddress(address).Hex() == "0x"+hexPart
}

// SanitizeInput strips every character that is not a word character,
// whitespace, period, or hyphen, then trims leading and trailing
// whitespace. The result is stable under repeated application.
//
// Example:
//
//	SanitizeInput("Hello, World! 123") // Returns: "Hello World 123"
func SanitizeInput(input string) string {
	return strings.TrimSpace(disallowedRunes.ReplaceAllString(input, ""))
}

// ValidateNumericInput reports whether value parses as a decimal number and
// lies within the optional inclusive bounds. The first bound is the
// minimum, the second the maximum; each is checked independently and extra
// bounds are ignored.
//
// Example:
//
//	ValidateNumericInput("42", 0, 100) // Returns: true
//	ValidateNumericInput("150", 0, 100) // Returns: false
//	ValidateNumericInput("-5")          // Returns: true (no bounds)
func ValidateNumericInput(value string, bounds ...float64) (valid bool) {
	defer func() { recordValidation(context.Background(), "numeric", valid) }()

	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(n) {
		return false
	}
	if len(bounds) >= 1 && n < bounds[0] {
		return false
	}
	if len(bounds) >= 2 && n > bounds[1] {
		return false
	}
	return true
}
