package domain

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type MemberProfile struct {
	Base
	UserID         uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Bio            *string        `gorm:"type:text" json:"bio,omitempty"`
	GraduationYear *string        `gorm:"type:varchar(50)" json:"graduation_year,omitempty"`
	Skills         pq.StringArray `gorm:"type:text[]" json:"skills"`
	Experience     *string        `gorm:"type:text" json:"experience,omitempty"`
	Education      *string        `gorm:"type:text" json:"education,omitempty"`
	LinkedinURL    *string        `json:"linkedin_url,omitempty"`
	ResumeURL      *string        `json:"resume_url,omitempty"`

	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
