package handlers

import (
	"errors"

	"github.com/ecoba/careers/careers-svc/internal/helper/utils"
	"github.com/ecoba/careers/careers-svc/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// respondError maps service errors onto HTTP statuses. Anything unknown is
// logged and hidden behind a 500.
func respondError(ctx *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return utils.ResponseError(ctx, fiber.StatusBadRequest, verr.Msg)
	case errors.Is(err, services.ErrInvalidStatus):
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnauthenticated),
		errors.Is(err, services.ErrInvalidCredentials):
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrWrongRole),
		errors.Is(err, services.ErrForbidden):
		return utils.ResponseError(ctx, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrJobNotFound),
		errors.Is(err, services.ErrApplicationNotFound),
		errors.Is(err, services.ErrEmployerNotFound):
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrAlreadyApplied):
		return utils.ResponseError(ctx, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrJobClosed),
		errors.Is(err, services.ErrProfileIncomplete):
		return utils.ResponseError(ctx, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrSubmitFailed):
		log.WithError(err).Error("application submit failed")
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, services.ErrSubmitFailed.Error())
	}

	log.WithError(err).WithField("path", ctx.Path()).Error("request failed")
	return utils.ResponseError(ctx, fiber.StatusInternalServerError, "internal server error")
}

func paramID(ctx *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
