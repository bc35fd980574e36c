package dapputil

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/chainkit/dapp-utils/instrumentation"
	"github.com/chainkit/dapp-utils/platform"
)

// SecureRandomBytes returns exactly n bytes from the environment's
// cryptographically secure random source: the Web Crypto API in browser
// builds, the operating system CSPRNG otherwise. It never falls back to a
// non-cryptographic generator.
//
// n == 0 yields an empty slice; negative counts are rejected with an error.
func SecureRandomBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("byte count must be non-negative, got %d", n)
	}

	b, err := platform.Current().RandomBytes(n)
	if err != nil {
		return nil, fmt.Errorf("failed to generate random bytes: %w", err)
	}
	recordRandomBytes(context.Background(), n)
	return b, nil
}

// HashData returns the lowercase hexadecimal SHA-256 digest of the UTF-8
// bytes of data. Browser builds delegate to the Web Crypto API when it is
// available, native builds to the standard library; both produce
// byte-identical digests for identical input.
//
// The context bounds the asynchronous browser digest; the native path
// completes immediately and ignores it.
func HashData(ctx context.Context, data string) (string, error) {
	ctx, span := startSpan(ctx, "HashData")
	defer span.End()
	span.SetAttributes(attribute.Int(instrumentation.AttrDigestInputBytes, len(data)))

	start := time.Now()
	digest, err := platform.Current().SHA256Hex(ctx, data)
	if err != nil {
		return "", fmt.Errorf("failed to compute digest: %w", err)
	}
	recordDigest(ctx, time.Since(start))
	return digest, nil
}

// IsSecureContext reports whether the current environment should be
// trusted with sensitive material. Native builds always report true, since
// server-side callers are assumed to run inside a trusted deployment.
// Browser builds consult the page's secure-context flag, protocol, and
// hostname.
//
// This is a heuristic trust boundary, not a cryptographic guarantee: a
// misconfigured proxy or embedder can make an insecure environment look
// secure. Callers gating high-value operations should verify transport
// security end to end.
func IsSecureContext() bool {
	return platform.Current().SecureContext()
}
