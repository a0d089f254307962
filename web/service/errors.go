package service

import "errors"

var (
	// ErrInvalidCredentials is returned when a password check fails during
	// login or password change.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrPrimaryAdmin guards the first-run admin seat against deletion and
	// role changes.
	ErrPrimaryAdmin = errors.New("cannot modify primary admin")

	// ErrUnknownAction is returned for admin actions outside
	// delete/promote/demote. No mutation happens.
	ErrUnknownAction = errors.New("unknown admin action")

	// ErrEnrichmentFailed covers upstream call failures and malformed
	// metadata responses. The pending record is left untouched.
	ErrEnrichmentFailed = errors.New("enrichment failed")

	// ErrSetupCompleted is returned when setup is attempted after the first
	// account already exists.
	ErrSetupCompleted = errors.New("setup already completed")
)
