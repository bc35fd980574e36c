package instrumentation

// Common span attribute keys
//
// SECURITY WARNING: Never put raw user input, addresses, or digest inputs in
// traces or metrics. Traces are persisted, replicated across monitoring
// infrastructure, and often visible to wider audiences than the application
// itself. Record metadata only: kinds, outcomes, lengths, durations.
const (
	// Validation attributes
	AttrValidationKind  = "dapputil.validation.kind"  // Which validator ran (address, numeric, call_params)
	AttrValidationValid = "dapputil.validation.valid" // Validation outcome (boolean)

	// Digest attributes
	AttrDigestInputBytes = "dapputil.digest.input_bytes" // Input length, never the input itself

	// Security attributes
	AttrAuditEventType   = "dapputil.audit.event_type" // Audit event type (validation_rejected, ...)
	AttrClientIdentifier = "dapputil.client"           // Rate-limit identifier, hashed before recording
)
