package domain

import "github.com/google/uuid"

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewed    ApplicationStatus = "reviewed"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationHired       ApplicationStatus = "hired"
)

var ApplicationStatuses = []ApplicationStatus{
	ApplicationPending,
	ApplicationReviewed,
	ApplicationShortlisted,
	ApplicationRejected,
	ApplicationHired,
}

// statusLabels are the member-facing wording of each status.
var statusLabels = map[ApplicationStatus]string{
	ApplicationPending:     "Pending Review",
	ApplicationReviewed:    "Under Review",
	ApplicationShortlisted: "Shortlisted",
	ApplicationRejected:    "Not Selected",
	ApplicationHired:       "Hired!",
}

func (s ApplicationStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s ApplicationStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

type Application struct {
	Base
	JobID       uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uidx_applications_job_member" json:"job_id"`
	MemberID    uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uidx_applications_job_member;index" json:"member_id"`
	CoverLetter *string           `gorm:"type:text" json:"cover_letter,omitempty"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`

	Member *MemberProfile `gorm:"foreignKey:MemberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
