package platform

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"sync"
)

// Capabilities is the set of environment-provided primitives the library
// depends on. Implementations are selected once at package initialization
// based on the runtime; see native.go and browser.go.
type Capabilities interface {
	// RandomBytes returns exactly n bytes from a cryptographically
	// secure source. n must be non-negative.
	RandomBytes(n int) ([]byte, error)

	// SHA256Hex returns the lowercase hexadecimal SHA-256 digest of the
	// UTF-8 bytes of data. All implementations must agree bit-for-bit.
	SHA256Hex(ctx context.Context, data string) (string, error)

	// SecureContext reports whether the environment should be trusted
	// with sensitive material. Native builds always report true.
	SecureContext() bool
}

var (
	mu      sync.RWMutex
	current Capabilities = detect()
)

// Current returns the capabilities bound at initialization.
func Current() Capabilities {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetCapabilities replaces the active capabilities and returns a function
// that restores the previous binding. Intended for tests that need
// deterministic randomness or simulated environments.
func SetCapabilities(c Capabilities) (restore func()) {
	mu.Lock()
	prev := current
	current = c
	mu.Unlock()

	return func() {
		mu.Lock()
		current = prev
		mu.Unlock()
	}
}

// hostCapabilities implements Capabilities on top of the operating system's
// CSPRNG and the standard library's SHA-256. It is the binding for native
// builds and the fallback for JS runtimes without a browser crypto global.
type hostCapabilities struct{}

func (hostCapabilities) RandomBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("byte count must be non-negative, got %d", n)
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("failed to read from system CSPRNG: %w", err)
	}
	return b, nil
}

func (hostCapabilities) SHA256Hex(_ context.Context, data string) (string, error) {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:]), nil
}

// SecureContext always reports true for host environments: code running
// server-side is assumed to originate from a trusted deployment. This is a
// trust-boundary heuristic, not a cryptographic guarantee.
func (hostCapabilities) SecureContext() bool {
	return true
}
