package domain

import "time"

const (
	NotificationApplyJob      = "applyJob"
	NotificationApplyEmployee = "applyEmployee"
	NotificationCVResponse    = "cvResponse"
	NotificationContact       = "contact"
)

type Notification struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index;not null" json:"user"` // recipient
	FromID uint   `gorm:"not null" json:"from"`       // sender
	Type   string `gorm:"type:varchar(20);not null" json:"type"`
	JobID  *uint  `json:"job,omitempty"`

	Message string `gorm:"not null" json:"message"`

	// Read is kept for API compatibility; consumption is modeled as deletion.
	Read bool `gorm:"not null;default:false" json:"read"`

	CV          string `json:"cv,omitempty"`
	Match       bool   `gorm:"not null;default:false" json:"match"`
	Response    string `json:"response,omitempty"`
	CoverLetter string `json:"coverLetter,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
