package util

import "net"

// IsLoopbackHostname checks if a hostname represents a loopback address.
// The literal name "localhost" is matched directly; anything else is parsed
// as an IP and classified with the standard library, which correctly handles:
//   - 127.0.0.0/8 range (all 16M addresses)
//   - ::1 (IPv6 loopback)
//   - ::ffff:127.0.0.1 (IPv4-mapped IPv6 loopback)
//
// Bracketed IPv6 hostnames like "[::1]" are normalized before parsing.
func IsLoopbackHostname(hostname string) bool {
	if hostname == "localhost" {
		return true
	}

	cleanHostname := hostname
	if len(hostname) > 2 && hostname[0] == '[' && hostname[len(hostname)-1] == ']' {
		cleanHostname = hostname[1 : len(hostname)-1]
	}

	if ip := net.ParseIP(cleanHostname); ip != nil {
		return ip.IsLoopback()
	}

	return false
}
