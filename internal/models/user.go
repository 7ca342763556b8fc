package models

// UserCollection is the collection holding platform accounts of every role.
const UserCollection = "user"

// Roles understood by the platform. The role is stored for RBAC purposes but
// no route enforces it against request identity.
var Roles = []string{"patient", "doctor", "hospital", "government", "admin"}

type User struct {
	Name     string `json:"name" bson:"name" binding:"required"`
	Email    string `json:"email" bson:"email" binding:"required,email"`
	Phone    string `json:"phone" bson:"phone" binding:"required"`
	Role     string `json:"role" bson:"role" binding:"required,oneof=patient doctor hospital government admin"`
	Language string `json:"language" bson:"language"`
	Address  string `json:"address,omitempty" bson:"address,omitempty"`

	// Doctor-specific fields, left empty for other roles.
	Qualifications     []string `json:"qualifications,omitempty" bson:"qualifications,omitempty"`
	RegistrationNumber string   `json:"registration_number,omitempty" bson:"registration_number,omitempty"`
	Specialization     string   `json:"specialization,omitempty" bson:"specialization,omitempty"`
	YearsExperience    *int     `json:"years_experience,omitempty" bson:"years_experience,omitempty" binding:"omitempty,gte=0"`
	OnlineStatus       *bool    `json:"online_status" bson:"online_status"`

	IsActive *bool `json:"is_active" bson:"is_active"`
}

// ApplyDefaults fills optional fields after a successful bind.
func (u *User) ApplyDefaults() {
	if u.Language == "" {
		u.Language = "en"
	}
	if u.OnlineStatus == nil {
		off := false
		u.OnlineStatus = &off
	}
	if u.IsActive == nil {
		active := true
		u.IsActive = &active
	}
}
