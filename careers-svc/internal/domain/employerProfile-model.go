package domain

import "github.com/google/uuid"

type EmployerProfile struct {
	Base
	UserID             uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CompanyName        string    `gorm:"type:varchar(200);not null" json:"company_name"`
	CompanyDescription *string   `gorm:"type:text" json:"company_description,omitempty"`
	CompanyWebsite     *string   `json:"company_website,omitempty"`
	CompanyLogoURL     *string   `json:"company_logo_url,omitempty"`
	Industry           *string   `gorm:"type:varchar(100)" json:"industry,omitempty"`
	CompanySize        *string   `gorm:"type:varchar(50)" json:"company_size,omitempty"`
	Location           *string   `json:"location,omitempty"`
	ContactEmail       *string   `json:"-"` // application notifications

	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
