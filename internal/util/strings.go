package util

// SafeTruncate safely truncates a string to maxLen bytes without panicking.
// Returns the original string if it's shorter than maxLen, otherwise returns
// the first maxLen bytes. This prevents index out of bounds errors when
// logging sensitive data like raw form input, where only a prefix should
// be shown.
//
// If maxLen is negative, it's treated as 0 and returns an empty string.
//
// Example:
//
//	SafeTruncate("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", 8) // Returns: "0x5aAeb6"
//	SafeTruncate("short", 10)                                      // Returns: "short"
//	SafeTruncate("test", -1)                                       // Returns: ""
func SafeTruncate(s string, maxLen int) string {
	if maxLen < 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
