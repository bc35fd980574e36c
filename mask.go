package dapputil

// DefaultVisibleChars is the number of leading and trailing characters left
// visible by MaskSensitiveData when the caller passes a non-positive count.
const DefaultVisibleChars = 6

// MaskSensitiveData masks the middle of a sensitive string for display,
// keeping the first and last visibleChars characters around a literal
// "..." separator. Strings of at most twice visibleChars are returned
// unchanged, since masking them would hide nothing useful.
//
// A non-positive visibleChars selects DefaultVisibleChars. Counting is per
// character, not per byte, so multi-byte runes are never split.
//
// Example:
//
//	MaskSensitiveData("abcdefghijklmno", 6) // Returns: "abcdef...jklmno"
//	MaskSensitiveData("short", 6)           // Returns: "short"
func MaskSensitiveData(data string, visibleChars int) string {
	if visibleChars <= 0 {
		visibleChars = DefaultVisibleChars
	}

	runes := []rune(data)
	if len(runes) <= visibleChars*2 {
		return data
	}
	return string(runes[:visibleChars]) + "..." + string(runes[len(runes)-visibleChars:])
}
