package models

import "time"

// Course is a standalone listing; Instructor is free text, not a user
// reference. Price 0 means the course is free. Thumbnail is null when no
// image was uploaded.
type Course struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"not null" json:"title"`
	Instructor  string  `gorm:"not null" json:"instructor"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Category    string  `gorm:"not null" json:"category"`
	Price       int     `gorm:"not null" json:"price"`
	Thumbnail   *string `json:"thumbnail"`
}

// Enrollment registers a user in a course. The composite unique index makes
// the insert itself enforce the one-enrollment-per-pair rule, so concurrent
// enroll requests cannot slip a duplicate past a separate lookup.
type Enrollment struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_enrollments_user_course" json:"user_id"`
	CourseID uint `gorm:"not null;uniqueIndex:idx_enrollments_user_course" json:"course_id"`

	CreatedAt time.Time `json:"created_at"`
}
