// Package security provides abuse controls for form handlers that consume
// the dapp-utils validators: audit logging of rejected input with PII
// protection, and per-client rate limiting of validation attempts.
//
// # Audit Logging
//
// The Auditor emits structured slog events for rejected input. Raw input is
// never logged in full; it is replaced with a truncated SHA-256 hash and a
// short prefix preview so operators can correlate repeated submissions
// without storing what the user typed.
//
//	auditor := security.NewAuditor(logger, true)
//	auditor.LogValidationRejected("contractAddress", rawInput, clientIP, "Invalid contract address")
//
// # Rate Limiting
//
// The RateLimiter throttles repeated validation attempts per client using a
// token bucket, with LRU eviction so memory stays bounded under distributed
// abuse.
//
//	limiter := security.NewRateLimiter(10, 20, logger)
//	defer limiter.Stop()
//
//	if !limiter.Allow(clientIP) {
//		// Too many attempts; make the client back off.
//	}
package security
