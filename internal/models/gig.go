package models

// Gig is a freelancer-authored service listing with a fixed price and
// delivery terms. The image is stored on disk under the uploads directory;
// ImagePath holds its relative path.
type Gig struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Category    string `json:"category"`
	Price       int    `json:"price"`
	Revisions   int    `json:"revisions"`
	Delivery    int    `json:"delivery"` // delivery time in days
	ImagePath   string `json:"image_path"`

	UserID uint  `gorm:"index" json:"user_id"`
	Owner  *User `gorm:"foreignKey:UserID" json:"owner,omitempty"`
}
