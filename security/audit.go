package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/chainkit/dapp-utils/instrumentation"
	"github.com/chainkit/dapp-utils/internal/util"
)

// inputPreviewLen bounds how much raw input may appear in a log entry.
const inputPreviewLen = 8

// Auditor handles audit logging of validation outcomes with PII protection.
type Auditor struct {
	logger  *slog.Logger
	enabled bool
	metrics *instrumentation.Metrics
}

// NewAuditor creates a new auditor. When enabled is false every Log call is
// a no-op.
func NewAuditor(logger *slog.Logger, enabled bool) *Auditor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Auditor{
		logger:  logger,
		enabled: enabled,
	}
}

// SetInstrumentation attaches OpenTelemetry instrumentation so every audit
// event is also counted. Call before the auditor is shared across
// goroutines.
func (a *Auditor) SetInstrumentation(inst *instrumentation.Instrumentation) {
	if inst == nil {
		a.metrics = nil
		return
	}
	a.metrics = inst.Metrics()
}

// Event represents a single audit event
type Event struct {
	Type      string
	Field     string
	Input     string
	ClientIP  string
	Details   map[string]any
	Timestamp time.Time
}

// LogEvent logs an audit event. The raw input never reaches the log in
// full: it is replaced with a truncated SHA-256 hash plus a short prefix
// preview.
func (a *Auditor) LogEvent(event Event) {
	if !a.enabled {
		return
	}

	event.Timestamp = time.Now()

	if a.metrics != nil {
		a.metrics.AuditEventsTotal.Add(context.Background(), 1, metric.WithAttributes(
			attribute.String(instrumentation.AttrAuditEventType, event.Type),
		))
	}

	a.logger.Info("validation_audit",
		"event_type", event.Type,
		"field", event.Field,
		"input_hash", hashForLogging(event.Input),
		"input_preview", util.SafeTruncate(event.Input, inputPreviewLen),
		"client_ip", event.ClientIP,
		"details", event.Details,
		"timestamp", event.Timestamp,
	)
}

// LogValidationRejected logs a rejected form field
func (a *Auditor) LogValidationRejected(field, rawInput, clientIP, reason string) {
	a.LogEvent(Event{
		Type:     "validation_rejected",
		Field:    field,
		Input:    rawInput,
		ClientIP: clientIP,
		Details: map[string]any{
			"reason": reason,
		},
	})
}

// LogRateLimitExceeded logs a rate limit violation
func (a *Auditor) LogRateLimitExceeded(clientIP string) {
	a.LogEvent(Event{
		Type:     "rate_limit_exceeded",
		ClientIP: clientIP,
	})
}

// hashForLogging creates a truncated SHA-256 hash of sensitive data so log
// entries can be correlated without storing the data itself
func hashForLogging(sensitive string) string {
	if sensitive == "" {
		return "<empty>"
	}
	hash := sha256.Sum256([]byte(sensitive))
	return hex.EncodeToString(hash[:])[:16]
}
