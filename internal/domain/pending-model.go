package domain

import "time"

// PendingVerification holds the verification code issued for an email that has
// no account yet. The row is overwritten on re-issue and removed once
// registration completes, so a user record is only ever created verified.
type PendingVerification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Code      string    `gorm:"type:varchar(6);not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
