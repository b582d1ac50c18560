package services

import "errors"

var (
	// ErrValidation is returned when required or malformed fields fail
	// validation before any write happens.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound is returned when a referenced user, job or notification
	// does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a verified account already exists for the
	// email being registered.
	ErrConflict = errors.New("user with this email already exists")

	// ErrForbidden is returned on ownership violations, e.g. mutating another
	// poster's job.
	ErrForbidden = errors.New("not authorized")

	// ErrInvalidOrExpiredCode covers wrong codes, expired codes and missing
	// pending records alike; callers cannot distinguish which one failed.
	ErrInvalidOrExpiredCode = errors.New("invalid or expired verification code")

	// ErrWeakPassword is returned when a new password is shorter than the
	// minimum length.
	ErrWeakPassword = errors.New("password must be at least 6 characters long")

	// ErrAlreadyVerified is returned when a resend is requested for an email
	// that already completed verification.
	ErrAlreadyVerified = errors.New("email is already verified")

	// ErrEmailDelivery is returned when the mail capability reports a send
	// failure. The issued code stays persisted so the caller can resend.
	ErrEmailDelivery = errors.New("failed to send email")

	// ErrInvalidCredentials is returned on login with an unknown email or a
	// wrong password; the message never says which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailNotVerified is returned on login before verification completed.
	ErrEmailNotVerified = errors.New("please verify your email before logging in")
)
