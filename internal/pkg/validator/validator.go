// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// Besides the stock tags it registers "solana_address", which accepts base58
// strings that decode to a 32-byte public key.
package validator

import (
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	gvalidator "github.com/go-playground/validator/v10"
	"github.com/mr-tron/base58"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

// solanaPublicKeyLength is the decoded size of an ed25519 public key.
const solanaPublicKeyLength = 32

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Address': value 'abc' does not meet the requirements for the 'solana_address' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	// Registration only fails for empty tags or nil funcs.
	_ = validator.RegisterValidation("solana_address", validateSolanaAddress)
}

// validateSolanaAddress reports whether the field is a base58-encoded 32-byte key.
func validateSolanaAddress(fl gvalidator.FieldLevel) bool {
	return IsSolanaAddress(fl.Field().String())
}

// IsSolanaAddress reports whether s is a base58-encoded 32-byte public key.
func IsSolanaAddress(s string) bool {
	if s == "" {
		return false
	}

	decoded, err := base58.Decode(s)
	if err != nil {
		return false
	}

	return len(decoded) == solanaPublicKeyLength
}

// IsOnCurve reports whether s decodes to a point on the ed25519 curve.
// Program-derived addresses are off the curve and have no private key.
func IsOnCurve(s string) bool {
	decoded, err := base58.Decode(s)
	if err != nil || len(decoded) != solanaPublicKeyLength {
		return false
	}

	_, err = new(edwards25519.Point).SetBytes(decoded)
	return err == nil
}

// formatError transforms a raw validator error into a multi-error chain rooted
// at ErrValidationFailed. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
