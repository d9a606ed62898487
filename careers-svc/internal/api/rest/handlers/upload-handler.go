package handlers

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/ecoba/careers/careers-svc/internal/api/rest/middleware"
	"github.com/ecoba/careers/careers-svc/internal/helper"
	"github.com/ecoba/careers/careers-svc/internal/helper/utils"
	"github.com/ecoba/careers/careers-svc/internal/interfaces"
	"github.com/ecoba/careers/careers-svc/pkg/files"
	"github.com/ecoba/careers/careers-svc/pkg/imaging"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const (
	maxUploadSize  = 5 * 1024 * 1024 // 5MB
	imageMaxWidth  = 800
	imageQuality   = 85
	uploadTimeout  = 20 * time.Second
	resumeFolder   = "ecoba/resumes"
	logoFolder     = "ecoba/logos"
	avatarFolder   = "ecoba/avatars"
	rawResource    = "raw"
	imageResource  = "image"
	uploadFormFile = "file"
)

type UploadResponse struct {
	URL string `json:"url"`
}

type UploadHandler struct {
	up   interfaces.Uploader
	auth helper.Auth
}

// NewUploadHandler accepts a nil uploader; the routes then answer 503.
func NewUploadHandler(up interfaces.Uploader, auth helper.Auth) *UploadHandler {
	return &UploadHandler{up: up, auth: auth}
}

func (h *UploadHandler) SetupRoutes(app *fiber.App) {
	uploads := app.Group("/api/uploads", middleware.AuthMiddleware(h.auth))

	uploads.Post("/resume", middleware.MemberOnly(h.auth), h.UploadResume)
	uploads.Post("/logo", middleware.EmployerOnly(h.auth), h.UploadLogo)
	uploads.Post("/avatar", h.UploadAvatar)
}

// UploadResume godoc
// @Summary Upload a resume (pdf/doc/docx, max 5MB)
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "resume"
// @Success 200 {object} map[string]interface{}
// @Router /api/uploads/resume [post]
func (h *UploadHandler) UploadResume(ctx *fiber.Ctx) error {
	return h.upload(ctx, resumeFolder, func(name string, b []byte) ([]byte, string, error) {
		if err := files.CheckDocument(name, b); err != nil {
			return nil, "", errors.New("only pdf/doc/docx allowed")
		}
		return b, rawResource, nil
	})
}

// UploadLogo godoc
// @Summary Upload a company logo (jpg/png/webp, stored as JPEG)
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "logo"
// @Success 200 {object} map[string]interface{}
// @Router /api/uploads/logo [post]
func (h *UploadHandler) UploadLogo(ctx *fiber.Ctx) error {
	return h.upload(ctx, logoFolder, normalizeImage)
}

func (h *UploadHandler) UploadAvatar(ctx *fiber.Ctx) error {
	return h.upload(ctx, avatarFolder, normalizeImage)
}

func normalizeImage(name string, b []byte) ([]byte, string, error) {
	if !files.IsImage(name) {
		return nil, "", errors.New("only jpg/jpeg/png/webp allowed")
	}
	out, err := imaging.NormalizeToJPG(b, imageMaxWidth, imageQuality)
	if err != nil {
		return nil, "", err
	}
	return out, imageResource, nil
}

// upload reads the form file, lets prepare check or transform it and stores
// it under folder, named after the uploading user.
func (h *UploadHandler) upload(ctx *fiber.Ctx, folder string, prepare func(name string, b []byte) ([]byte, string, error)) error {
	if h.up == nil {
		return utils.ResponseError(ctx, fiber.StatusServiceUnavailable, "uploads are not configured")
	}

	file, err := ctx.FormFile(uploadFormFile)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file is required")
	}
	if file.Size > maxUploadSize {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file too large (max 5MB)")
	}

	f, err := file.Open()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "cannot open uploaded file")
	}
	defer f.Close()

	b, err := files.ReadAllLimit(f, maxUploadSize)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	body, resourceType, err := prepare(file.Filename, b)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	session, _ := h.auth.GetCurrentUser(ctx)
	c, cancel := context.WithTimeout(ctx.UserContext(), uploadTimeout)
	defer cancel()

	// raw files are served with whatever extension the public id carries
	name := session.UserID.String()
	if resourceType == rawResource {
		name += strings.ToLower(filepath.Ext(file.Filename))
	}

	url, err := h.up.UploadBytes(c, folder, name, resourceType, body)
	if err != nil {
		log.WithError(err).WithField("folder", folder).Error("upload failed")
		return utils.ResponseError(ctx, fiber.StatusBadGateway, "upload failed")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, UploadResponse{URL: url})
}
