// Package dapputil provides validation, hashing, and display helpers for
// decentralized-application templates.
//
// The helpers sanity-check user-supplied blockchain addresses and numeric
// form input, produce SHA-256 digests, draw cryptographically secure random
// bytes, and mask sensitive strings for display. Every function is
// independent and free of shared state; all of them are safe to call
// concurrently.
//
// The library runs both natively and in the browser when compiled to
// WebAssembly. Environment-specific primitives (CSPRNG, SHA-256, trust
// signals) are bound once at startup by the platform subpackage; helpers
// never branch on the environment themselves.
//
// Boolean validators never return errors: invalid input simply yields
// false. The composite ValidateCallParams returns a ValidationResult with a
// human-readable reason so form handlers can tell the user which field was
// rejected.
package dapputil
