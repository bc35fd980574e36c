// Package util provides common utility functions used across the dapp-utils library.
//
// This package contains helper functions for string handling and hostname
// classification that are shared by multiple packages. These utilities are
// used internally to avoid code duplication and keep behavior consistent
// across the codebase.
//
// Key utilities:
//   - SafeTruncate: Safely truncates strings when logging sensitive input
//   - IsLoopbackHostname: Checks if a hostname represents a loopback address
package util
