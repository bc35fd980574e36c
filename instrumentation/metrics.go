package instrumentation

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all metric instruments for the dapp-utils library
type Metrics struct {
	// Validation metrics
	ValidationsTotal metric.Int64Counter

	// Digest metrics
	DigestsTotal   metric.Int64Counter
	DigestDuration metric.Float64Histogram

	// Randomness metrics
	RandomBytesGenerated metric.Int64Counter

	// Security metrics
	RateLimitExceeded metric.Int64Counter
	AuditEventsTotal  metric.Int64Counter
}

// newMetrics creates and registers all metric instruments
func newMetrics(inst *Instrumentation) (*Metrics, error) {
	m := &Metrics{}

	var err error
	m.ValidationsTotal, err = inst.validateMeter.Int64Counter(
		"dapputil.validations.total",
		metric.WithDescription("Total number of validation checks, by kind and outcome"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create validations.total counter: %w", err)
	}

	m.DigestsTotal, err = inst.cryptoMeter.Int64Counter(
		"dapputil.digests.total",
		metric.WithDescription("Total number of SHA-256 digests computed"),
		metric.WithUnit("{digest}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create digests.total counter: %w", err)
	}

	m.DigestDuration, err = inst.cryptoMeter.Float64Histogram(
		"dapputil.digest.duration",
		metric.WithDescription("SHA-256 digest duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create digest.duration histogram: %w", err)
	}

	m.RandomBytesGenerated, err = inst.cryptoMeter.Int64Counter(
		"dapputil.random.bytes",
		metric.WithDescription("Total number of secure random bytes generated"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create random.bytes counter: %w", err)
	}

	m.RateLimitExceeded, err = inst.securityMeter.Int64Counter(
		"dapputil.rate_limit.exceeded",
		metric.WithDescription("Number of validation-attempt rate limit violations"),
		metric.WithUnit("{violation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate_limit.exceeded counter: %w", err)
	}

	m.AuditEventsTotal, err = inst.securityMeter.Int64Counter(
		"dapputil.audit.events",
		metric.WithDescription("Number of audit events emitted"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit.events counter: %w", err)
	}

	return m, nil
}
