package validation

import (
	"strings"

	"tippool/internal/errors"
)

const MaxAccountRefLength = 255

// ValidateParticipantID rejects empty or blank participant identifiers
// before any gateway call is attempted.
func ValidateParticipantID(id string) error {
	if strings.TrimSpace(id) == "" {
		return &errors.DomainError{
			Code:    "INVALID_INPUT",
			Message: "participant id must not be empty",
		}
	}
	return nil
}

// ValidateAccountRef checks a required gateway account reference.
func ValidateAccountRef(ref string) error {
	if strings.TrimSpace(ref) == "" {
		return &errors.DomainError{
			Code:    "INVALID_INPUT",
			Message: "account reference must not be empty",
		}
	}
	if len(ref) > MaxAccountRefLength {
		return &errors.DomainError{
			Code:    "INVALID_INPUT",
			Message: "account reference too long",
		}
	}
	return nil
}

// ValidateOptionalAccountRef checks a reference that may be absent. A nil
// pointer is valid; a present-but-blank reference is not.
func ValidateOptionalAccountRef(ref *string) error {
	if ref == nil {
		return nil
	}
	return ValidateAccountRef(*ref)
}

// ValidateCardToken checks the tokenized card reference handed in by the
// caller's payment form.
func ValidateCardToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return &errors.DomainError{
			Code:    "INVALID_INPUT",
			Message: "card token must not be empty",
		}
	}
	return nil
}
