package models

import "gorm.io/gorm"

// Job is a buyer-authored work request open to applications. Freelancer is a
// free-text name, not a user reference; it stays null until the buyer assigns
// someone through an update.
type Job struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Category    string  `json:"category"`
	Status      string  `gorm:"default:'Pending'" json:"status"`
	Freelancer  *string `json:"freelancer"`
	BudgetType  string  `json:"budget_type"`
	Deadline    string  `json:"deadline"` // free text, not a structured date
	Skills      string  `gorm:"type:text" json:"skills"`

	BuyerID uint `gorm:"index" json:"buyer_id"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.Status == "" {
		j.Status = "Pending"
	}
	return nil
}

// Application links a job and a freelancer. There is no uniqueness rule: a
// freelancer may apply to the same job more than once.
type Application struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	JobID        uint   `gorm:"index" json:"job_id"`
	FreelancerID uint   `gorm:"index" json:"freelancer_id"`
	Message      string `gorm:"type:text" json:"message"`
}
