package dto

import "github.com/google/uuid"

// Profile responses use plain strings: an absent column reads back as "".

type MemberProfileResponse struct {
	ID             *uuid.UUID `json:"id"`
	FullName       string     `json:"full_name"`
	AvatarURL      string     `json:"avatar_url"`
	Bio            string     `json:"bio"`
	GraduationYear string     `json:"graduation_year"`
	Skills         []string   `json:"skills"`
	Experience     string     `json:"experience"`
	Education      string     `json:"education"`
	LinkedinURL    string     `json:"linkedin_url"`
	ResumeURL      string     `json:"resume_url"`
}

type UpdateMemberInfoRequest struct {
	FullName       string `json:"full_name" validate:"max=100"`
	AvatarURL      string `json:"avatar_url"`
	Bio            string `json:"bio"`
	GraduationYear string `json:"graduation_year" validate:"max=50"`
	LinkedinURL    string `json:"linkedin_url"`
	ResumeURL      string `json:"resume_url"`
}

type UpdateMemberSkillsRequest struct {
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
}

type SkillRequest struct {
	Skill string `json:"skill" validate:"required,max=100"`
}

type EmployerProfileResponse struct {
	ID                 *uuid.UUID `json:"id"`
	CompanyName        string     `json:"company_name"`
	CompanyDescription string     `json:"company_description"`
	CompanyWebsite     string     `json:"company_website"`
	CompanyLogoURL     string     `json:"company_logo_url"`
	Industry           string     `json:"industry"`
	CompanySize        string     `json:"company_size"`
	Location           string     `json:"location"`
	ContactEmail       string     `json:"contact_email"`
}

type UpdateEmployerProfileRequest struct {
	CompanyName        string `json:"company_name" validate:"max=200"`
	CompanyDescription string `json:"company_description"`
	CompanyWebsite     string `json:"company_website"`
	CompanyLogoURL     string `json:"company_logo_url"`
	Industry           string `json:"industry"`
	CompanySize        string `json:"company_size"`
	Location           string `json:"location"`
	ContactEmail       string `json:"contact_email"`
}
