// Package platform selects the cryptographic and environment capabilities
// available to the current runtime.
//
// The library runs in two environments: native builds (servers, CLIs, tests)
// and browser builds compiled to WebAssembly. Each environment exposes its
// own secure random source, SHA-256 primitive, and trust signals. Rather
// than branching inline on every call, the package detects the environment
// once at initialization and binds a Capabilities implementation that all
// helpers consume read-only afterwards.
//
// Both implementations are required to produce byte-identical SHA-256
// digests for identical input, and both draw randomness exclusively from
// cryptographically secure sources. There is no fallback to a
// non-cryptographic PRNG under any circumstances.
package platform
