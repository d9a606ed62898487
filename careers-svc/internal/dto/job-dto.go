package dto

import "time"

// JobCriteria holds the listing filters. The zero value matches every job.
type JobCriteria struct {
	Type     string
	Location string
	Remote   bool
	Category string
}

func (c JobCriteria) IsZero() bool {
	return c == JobCriteria{}
}

type JobSearchQuery struct {
	Q        string `query:"q"`
	Type     string `query:"type"`
	Location string `query:"location"`
	Remote   bool   `query:"remote"`
	Category string `query:"category"`
}

func (q JobSearchQuery) Criteria() JobCriteria {
	return JobCriteria{
		Type:     q.Type,
		Location: q.Location,
		Remote:   q.Remote,
		Category: q.Category,
	}
}

type JobRequest struct {
	Title        string     `json:"title" validate:"required,max=200"`
	Description  string     `json:"description" validate:"required"`
	Location     string     `json:"location"`
	JobType      string     `json:"job_type"`
	Category     string     `json:"category"`
	Remote       bool       `json:"remote"`
	SalaryMin    *int64     `json:"salary_min"`
	SalaryMax    *int64     `json:"salary_max"`
	Requirements []string   `json:"requirements"`
	Benefits     []string   `json:"benefits"`
	ExpiresAt    *time.Time `json:"expires_at"`
}
