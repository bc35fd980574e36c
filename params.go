package dapputil

import "context"

// Validation failure reasons surfaced to form handlers. The strings are
// shown to end users, so they stay short and field-specific.
const (
	ErrorInvalidContractAddress = "Invalid contract address"
	ErrorInvalidUserAddress     = "Invalid user address"
	ErrorValueRequired          = "Value cannot be null"
)

// ValidationResult reports the outcome of a composite validation. Error is
// empty when Valid is true.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// CallParams carries the user-supplied parameters of a contract call form.
// Nil address pointers mean the field was omitted and is not validated.
// Value is only inspected when ValueSet is true, which distinguishes a
// field that was never supplied from one explicitly set to null.
type CallParams struct {
	ContractAddress *string
	UserAddress     *string
	Value           any
	ValueSet        bool
}

// ValidateCallParams checks the supplied call parameters in order,
// short-circuiting on the first failure:
//
//  1. A supplied contract address must pass ValidateAddress.
//  2. A supplied user address must pass ValidateAddress.
//  3. A supplied value must not be null (zero values are fine).
//
// Omitted fields never fail.
func ValidateCallParams(p CallParams) (result ValidationResult) {
	defer func() { recordValidation(context.Background(), "call_params", result.Valid) }()

	if p.ContractAddress != nil && !ValidateAddress(*p.ContractAddress) {
		return ValidationResult{Error: ErrorInvalidContractAddress}
	}
	if p.UserAddress != nil && !ValidateAddress(*p.UserAddress) {
		return ValidationResult{Error: ErrorInvalidUserAddress}
	}
	if p.ValueSet && p.Value == nil {
		return ValidationResult{Error: ErrorValueRequired}
	}
	return ValidationResult{Valid: true}
}
