package services

import (
	"encoding/json"
	"time"

	"github.com/ecoba/careers/careers-svc/internal/dto"
	"github.com/ecoba/careers/careers-svc/internal/interfaces"
	log "github.com/sirupsen/logrus"
)

// publishEvent never fails the caller; a missing or broken broker is only logged.
func publishEvent(p interfaces.ProducerHandler, eventType string, payload any) {
	if p == nil {
		return
	}

	body, err := json.Marshal(dto.Event{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		log.WithError(err).WithField("event", eventType).Error("encode event")
		return
	}

	if err := p.PublishMessage([]byte(eventType), body); err != nil {
		log.WithError(err).WithField("event", eventType).Warn("publish event failed")
	}
}
