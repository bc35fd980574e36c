// Package testutil provides testing utilities and helpers for the dapp-utils library.
package testutil
