// @title ECOBA Careers API
// @version 1.0
// @description Job board for alumni members and employers: listings, applications, profiles.
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer <JWT>

package api

import (
	"context"
	"fmt"

	"github.com/ecoba/careers/careers-svc/config"
	"github.com/ecoba/careers/careers-svc/infra/queue"
	"github.com/ecoba/careers/careers-svc/internal/api/rest/handlers"
	"github.com/ecoba/careers/careers-svc/internal/catalog"
	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/ecoba/careers/careers-svc/internal/helper"
	"github.com/ecoba/careers/careers-svc/internal/helper/utils"
	"github.com/ecoba/careers/careers-svc/internal/interfaces"
	"github.com/ecoba/careers/careers-svc/internal/repository"
	"github.com/ecoba/careers/careers-svc/internal/services"
	"github.com/ecoba/careers/careers-svc/pkg/cloudinary"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const bodyLimit = 6 * 1024 * 1024 // uploads are capped at 5MB, leave room for the multipart envelope

func StartServer(cfg config.Config) {
	app := fiber.New(fiber.Config{BodyLimit: bodyLimit})
	RegisterSwagger(app)

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: cfg.BaseURL != "*",
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Info("database connected")

	migrate(db)

	// ---------- Infra ----------
	var producer interfaces.ProducerHandler
	if p := queue.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic, cfg.KafkaUsername, cfg.KafkaPassword); p != nil {
		producer = p
		defer p.Close()
		log.WithFields(log.Fields{"broker": cfg.KafkaBroker, "topic": cfg.KafkaTopic}).Info("kafka producer ready")
	} else {
		log.Warn("KAFKA_BROKER not set, events are not published")
	}

	var uploader interfaces.Uploader
	if cld, err := cloudinary.New(cfg.CloudinaryUrl); err == nil {
		uploader = cloudinary.NewCloudinaryUploader(cld)
	} else {
		log.WithError(err).Warn("uploads disabled")
	}

	cat := catalog.MustLoad()
	authHelper := helper.SetupAuth(cfg.AccessSecret, cfg.TokenTTL)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	memberRepo := repository.NewMemberProfileRepository(db)
	employerRepo := repository.NewEmployerProfileRepository(db)
	jobRepo := repository.NewJobRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// ---------- Services ----------
	authSvc := services.NewAuthService(userRepo, producer, authHelper)
	jobSvc := services.NewJobService(jobRepo, employerRepo, auditRepo, cat)
	appSvc := services.NewApplicationService(appRepo, jobRepo, memberRepo, employerRepo, userRepo, auditRepo, producer)
	profileSvc := services.NewProfileService(userRepo, memberRepo, employerRepo, cat)
	auditSvc := services.NewAuditService(auditRepo)

	if err := authSvc.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.WithError(err).Error("admin seed failed")
	}

	// ---------- Handlers ----------
	handlers.NewAuthHandler(authSvc, authHelper).SetupRoutes(app)
	handlers.NewJobHandler(jobSvc, authHelper, cat).SetupRoutes(app)
	handlers.NewApplicationHandler(appSvc, authHelper).SetupRoutes(app)
	handlers.NewProfileHandler(profileSvc, authHelper).SetupRoutes(app)
	handlers.NewUploadHandler(uploader, authHelper).SetupRoutes(app)
	handlers.NewAdminHandler(auditSvc, authHelper).SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return utils.ResponseSuccess(c, fiber.StatusOK, fiber.Map{"status": "ok"})
	})

	log.Info("listening on ", cfg.ServerPort)
	log.Fatal(app.Listen(cfg.ServerPort))
}

const migrateLockID int64 = 20250301

// migrate runs AutoMigrate under a Postgres advisory lock so parallel
// instances do not race on DDL.
func migrate(db *gorm.DB) {
	err := withAdvisoryLock(db, migrateLockID, func(conn *gorm.DB) error {
		return conn.AutoMigrate(
			&domain.User{},
			&domain.MemberProfile{},
			&domain.EmployerProfile{},
			&domain.Job{},
			&domain.Application{},
			&domain.AuditLog{},
		)
	})
	if err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Info("migration successful")
}

// withAdvisoryLock holds a session-level advisory lock while fn runs. Lock,
// fn and unlock share one pinned connection; the lock belongs to a session.
func withAdvisoryLock(db *gorm.DB, id int64, fn func(conn *gorm.DB) error) error {
	return db.Connection(func(conn *gorm.DB) error {
		if err := conn.Exec("SELECT pg_advisory_lock(?)", id).Error; err != nil {
			return fmt.Errorf("advisory lock: %w", err)
		}
		defer func() {
			if err := conn.Exec("SELECT pg_advisory_unlock(?)", id).Error; err != nil {
				log.WithError(err).Warn("advisory unlock failed")
			}
		}()
		return fn(conn)
	})
}
