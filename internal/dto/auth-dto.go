package dto

type SendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyEmailRequest struct {
	Email             string `json:"email" validate:"required,email"`
	VerificationCode  string `json:"verificationCode" validate:"required,len=6"`
	Name              string `json:"name" validate:"required"`
	Password          string `json:"password" validate:"required,min=6"`
	Role              string `json:"role" validate:"required,oneof=employer jobseeker"`
	Contact           string `json:"contact" validate:"required"`
	Position          string `json:"position,omitempty"`
	YearsOfExperience *int   `json:"yearsOfExperience,omitempty"`
}

type CheckCodeRequest struct {
	Email            string `json:"email" validate:"required,email"`
	VerificationCode string `json:"verificationCode" validate:"required"`
	Type             string `json:"type" validate:"required,oneof=verify reset"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	ResetCode   string `json:"resetCode" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthClaims is the decoded JWT payload attached to the request context.
type AuthClaims struct {
	UserID uint    `json:"id"`
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Expiry float64 `json:"expiry"`
}
