package domain

import "time"

type Job struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"not null" json:"title"`
	Description string  `json:"description"`
	Company     string  `gorm:"not null" json:"company"`
	Location    string  `gorm:"not null" json:"location"`
	Contact     string  `gorm:"not null" json:"contact"`
	PosterID    uint    `gorm:"index;not null" json:"poster"`
	Salary      float64 `gorm:"not null" json:"salary"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
