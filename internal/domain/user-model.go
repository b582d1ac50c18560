package domain

import "time"

const (
	RoleEmployer  = "employer"
	RoleJobseeker = "jobseeker"
)

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"type:varchar(20);not null" json:"role"`
	Contact      string `gorm:"not null" json:"contact"`

	// Jobseeker-only fields.
	Position          *string `json:"position,omitempty"`
	YearsOfExperience *int    `json:"yearsOfExperience,omitempty"`

	IsEmailVerified bool `gorm:"not null;default:false" json:"isEmailVerified"`

	PasswordResetCode    string     `json:"-"`
	PasswordResetExpires *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) IsJobseeker() bool {
	return u.Role == RoleJobseeker
}
