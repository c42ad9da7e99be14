package models

type Role string

const (
	RoleBuyer      Role = "buyer"
	RoleFreelancer Role = "freelancer"
	RoleAdmin      Role = "admin"
)

type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Role  Role   `gorm:"type:varchar(20);default:'buyer'" json:"role"`

	Bio        string  `gorm:"type:text" json:"bio"`
	Skills     string  `gorm:"type:text" json:"skills"`
	Rating     float64 `gorm:"default:0" json:"rating"`
	ProfilePic string  `json:"profile_pic"`

	Gigs         []Gig         `gorm:"foreignKey:UserID" json:"gigs,omitempty"`
	Applications []Application `gorm:"foreignKey:FreelancerID" json:"applications,omitempty"`
}
