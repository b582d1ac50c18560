package interfaces

// Mailer delivers one-time codes. Implementations resolve their configured or
// log-only state once at startup and must report failure instead of hanging.
type Mailer interface {
	SendVerificationCode(to, code string) error
	SendPasswordResetCode(to, code string) error
}
