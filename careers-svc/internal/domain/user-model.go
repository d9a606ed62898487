package domain

type Role string

const (
	RoleNone     Role = "none"
	RoleMember   Role = "member"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

// User carries the base profile (full name, avatar) shared by every role.
type User struct {
	Base
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	FullName     string  `gorm:"type:varchar(100);not null" json:"full_name"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	Role         Role    `gorm:"type:varchar(20);not null;default:member" json:"role"`
}
