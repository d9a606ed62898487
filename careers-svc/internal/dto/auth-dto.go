package dto

import (
	"time"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	FullName        string `json:"full_name" validate:"required,min=2,max=100"`
	Role            string `json:"role" validate:"required,oneof=member employer"`

	GraduationYear string `json:"graduation_year,omitempty" validate:"max=50"` // member only
	CompanyName    string `json:"company_name,omitempty" validate:"max=200"`   // employer only
}

type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Session is the authenticated identity attached to a request.
type Session struct {
	UserID    uuid.UUID   `json:"user_id"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	IssuedAt  time.Time   `json:"iat"`
	ExpiresAt time.Time   `json:"exp"`
}

func (s Session) SignedIn() bool {
	return s.UserID != uuid.Nil
}

type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	FullName  string      `json:"full_name"`
	AvatarURL string      `json:"avatar_url"`
	Role      domain.Role `json:"role"`
	CreatedAt string      `json:"created_at"`
}

type MeResponse struct {
	User *UserResponse `json:"user"`
	Role domain.Role   `json:"role"`
}

func NewUserResponse(u *domain.User) UserResponse {
	avatar := ""
	if u.AvatarURL != nil {
		avatar = *u.AvatarURL
	}
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		AvatarURL: avatar,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
