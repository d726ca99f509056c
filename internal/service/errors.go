package service

import "errors"

var (
	// ErrInvalidDataProvided indicates a malformed or incomplete request
	// payload.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrMissingRequiredFields wraps ErrInvalidDataProvided semantics with
	// the names of the absent fields appended by the validator.
	ErrMissingRequiredFields = errors.New("missing required fields")

	// ErrInvalidCredentials is the single failure reported for both an
	// unknown email and a wrong password. Keeping one sentinel for both
	// cases prevents callers from learning which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotResourceOwner is returned when a record exists but belongs to a
	// different user than the authenticated caller.
	ErrNotResourceOwner = errors.New("resource belongs to another user")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises every JWT validation failure
	// (expired, tampered, malformed, wrong issuer) so that callers do not
	// need to inspect low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
