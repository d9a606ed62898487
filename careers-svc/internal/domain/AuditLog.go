package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	AuditActionStatusChanged = "application.status_changed"
	AuditActionJobDeleted    = "job.deleted"
)

type AuditLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ActorID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"actor_id"`
	Action    string         `gorm:"type:varchar(100);not null" json:"action"`
	Entity    string         `gorm:"type:varchar(100);not null" json:"entity"`
	EntityID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"entity_id"`
	Note      *string        `gorm:"type:text" json:"note,omitempty"`
	Metadata  datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
