package testutil

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// StubCapabilities is a deterministic platform.Capabilities implementation
// for tests. Random output is a repeatable counter sequence, digests are
// computed independently with the standard library, and the secure-context
// answer is configurable.
type StubCapabilities struct {
	// Secure is returned verbatim from SecureContext.
	Secure bool

	// RandomErr, when set, is returned from every RandomBytes call.
	RandomErr error

	// DigestErr, when set, is returned from every SHA256Hex call.
	DigestErr error

	// DigestBlocks, when set, makes SHA256Hex wait for context
	// cancellation and return the context error, simulating an
	// asynchronous digest that never settles.
	DigestBlocks bool
}

// RandomBytes returns n bytes of the deterministic sequence 0, 1, 2, ...
func (s *StubCapabilities) RandomBytes(n int) ([]byte, error) {
	if s.RandomErr != nil {
		return nil, s.RandomErr
	}
	if n < 0 {
		return nil, fmt.Errorf("byte count must be non-negative, got %d", n)
	}

	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b, nil
}

// SHA256Hex computes the digest with crypto/sha256 directly, giving tests an
// independent reference to compare platform implementations against.
func (s *StubCapabilities) SHA256Hex(ctx context.Context, data string) (string, error) {
	if s.DigestErr != nil {
		return "", s.DigestErr
	}
	if s.DigestBlocks {
		<-ctx.Done()
		return "", ctx.Err()
	}

	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:]), nil
}

// SecureContext returns the configured Secure flag.
func (s *StubCapabilities) SecureContext() bool {
	return s.Secure
}

// Ptr returns a pointer to v. Convenient for building optional fields in
// table-driven tests.
func Ptr[T any](v T) *T {
	return &v
}
