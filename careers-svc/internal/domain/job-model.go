package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
	JobTypeRemote     = "remote"
)

var JobTypes = []string{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote}

func ValidJobType(t string) bool {
	for _, jt := range JobTypes {
		if jt == t {
			return true
		}
	}
	return false
}

type Job struct {
	Base
	EmployerID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"employer_id"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	Location     *string        `json:"location,omitempty"`
	JobType      string         `gorm:"type:varchar(20);not null;default:full-time" json:"job_type"`
	Category     *string        `gorm:"type:varchar(100);index" json:"category,omitempty"`
	Remote       bool           `gorm:"not null;default:false" json:"remote"`
	SalaryMin    *int64         `json:"salary_min,omitempty"`
	SalaryMax    *int64         `json:"salary_max,omitempty"`
	Requirements pq.StringArray `gorm:"type:text[]" json:"requirements"`
	Benefits     pq.StringArray `gorm:"type:text[]" json:"benefits"`
	IsActive     bool           `gorm:"not null;default:true;index" json:"is_active"`
	ExpiresAt    *time.Time     `json:"expires_at,omitempty"`

	Employer     *EmployerProfile `gorm:"foreignKey:EmployerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"employer,omitempty"`
	Applications []Application    `gorm:"foreignKey:JobID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (j Job) CompanyName() string {
	if j.Employer == nil {
		return ""
	}
	return j.Employer.CompanyName
}

func (j Job) StringCategory() string {
	if j.Category == nil {
		return ""
	}
	return *j.Category
}

func (j Job) StringLocation() string {
	if j.Location == nil {
		return ""
	}
	return *j.Location
}

// Open reports whether the job still accepts applications at now.
func (j Job) Open(now time.Time) bool {
	if !j.IsActive {
		return false
	}
	return j.ExpiresAt == nil || now.Before(*j.ExpiresAt)
}
