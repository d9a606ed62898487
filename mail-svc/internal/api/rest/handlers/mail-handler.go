package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecoba/careers/mail-svc/internal/dto"
	"github.com/ecoba/careers/mail-svc/internal/services"
	log "github.com/sirupsen/logrus"
)

type MailHandler struct {
	MailService *services.MailService
}

func NewMailHandler(ms *services.MailService) *MailHandler {
	return &MailHandler{MailService: ms}
}

// HandleMessage decodes one event envelope and sends the matching e-mail.
// Unknown event types are skipped.
func (h *MailHandler) HandleMessage(ctx context.Context, key, value []byte) error {
	var env dto.Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		return fmt.Errorf("invalid event envelope: %w", err)
	}

	entry := log.WithFields(log.Fields{"type": env.Type, "key": string(key)})

	switch env.Type {
	case dto.EventUserRegistered:
		var e dto.UserRegisteredEvent
		if err := decode(env, &e); err != nil {
			return err
		}
		entry.WithField("user_id", e.UserID).Info("welcome mail")
		return h.MailService.SendWelcome(ctx, e)

	case dto.EventApplicationSubmitted:
		var e dto.ApplicationSubmittedEvent
		if err := decode(env, &e); err != nil {
			return err
		}
		entry.WithField("application_id", e.ApplicationID).Info("application received mail")
		return h.MailService.SendApplicationReceived(ctx, e)

	case dto.EventApplicationStatusChanged:
		var e dto.ApplicationStatusChangedEvent
		if err := decode(env, &e); err != nil {
			return err
		}
		entry.WithFields(log.Fields{"application_id": e.ApplicationID, "status": e.Status}).Info("status mail")
		return h.MailService.SendStatusChanged(ctx, e)
	}

	entry.Warn("skipping unknown event type")
	return nil
}

func decode(env dto.Envelope, out any) error {
	if err := json.Unmarshal(env.Payload, out); err != nil {
		return fmt.Errorf("invalid %s payload: %w", env.Type, err)
	}
	return nil
}
