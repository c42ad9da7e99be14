package models

import "time"

// Contact is a contact-form submission. It has no relation to User and is
// immutable once created.
type Contact struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Message string `gorm:"type:text;not null" json:"message"`

	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`
}
