// Error taxonomy shared by every flow. Handlers translate these
// sentinels into HTTP statuses with errors.Is; anything else is an
// unexpected failure and maps to 500.
package usecase

import "errors"

var (
	// ErrConflict signals a duplicate active identity (email or phone
	// already belongs to a non-pending user).
	ErrConflict = errors.New("identity already in use")

	// ErrNotFound signals an absent token, user or row.
	ErrNotFound = errors.New("not found")

	// ErrExpired signals a grant or refresh token past its expiry.
	ErrExpired = errors.New("expired")

	// ErrAlreadyUsed signals a grant whose accepted flag is already set.
	ErrAlreadyUsed = errors.New("already used")

	// ErrCodeMismatch signals a wrong one-time code.
	ErrCodeMismatch = errors.New("code mismatch")

	// ErrUnauthorized is the single outward outcome for every failed
	// login or bearer check; flows never reveal which check failed.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation wraps request validation failures.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden signals an ownership or role violation.
	ErrForbidden = errors.New("forbidden")
)
