package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/jobboardhq/jobboard-backend/config"
	"github.com/jobboardhq/jobboard-backend/infra/queue"
	"github.com/jobboardhq/jobboard-backend/internal/api/rest/handlers"
	"github.com/jobboardhq/jobboard-backend/internal/api/rest/middleware"
	"github.com/jobboardhq/jobboard-backend/internal/domain"
	"github.com/jobboardhq/jobboard-backend/internal/helper"
	"github.com/jobboardhq/jobboard-backend/internal/interfaces"
	"github.com/jobboardhq/jobboard-backend/internal/mailer"
	"github.com/jobboardhq/jobboard-backend/internal/repository"
	"github.com/jobboardhq/jobboard-backend/internal/services"
	"github.com/jobboardhq/jobboard-backend/pkg/cloudinary"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewApp assembles the fiber application from its collaborators. Tests call
// this directly with an in-memory store and fake capabilities.
func NewApp(
	db *gorm.DB,
	auth helper.Auth,
	mail interfaces.Mailer,
	uploader interfaces.Uploader,
	producer interfaces.ProducerHandler,
	corsOrigin string,
) *fiber.App {
	app := fiber.New()

	if corsOrigin == "" {
		corsOrigin = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigin,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	pendingRepo := repository.NewPendingVerificationRepository(db)
	jobRepo := repository.NewJobRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	// ---------- Services ----------
	authSvc := services.NewAuthService(userRepo, pendingRepo, mail, auth, producer)
	jobSvc := services.NewJobService(jobRepo, userRepo, notifRepo, uploader, producer)
	employeeSvc := services.NewEmployeeService(userRepo, notifRepo)
	notifSvc := services.NewNotificationService(notifRepo)

	// ---------- Routes ----------
	authMW := middleware.AuthMiddleware(auth)
	api := app.Group("/api")

	handlers.NewAuthHandler(authSvc).SetupRoutes(api)
	handlers.NewJobHandler(jobSvc, auth).SetupRoutes(api, authMW)
	handlers.NewEmployeeHandler(employeeSvc, auth).SetupRoutes(api, authMW)
	handlers.NewNotificationHandler(notifSvc, auth).SetupRoutes(api, authMW)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return app
}

func StartServer(cfg config.Config) {
	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	if err := migrate(db); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	producer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	var uploader interfaces.Uploader
	if cfg.CloudinaryUrl != "" {
		cld, err := cloudinary.New()
		if err != nil {
			log.Fatalf("cloudinary init error: %v", err)
		}
		uploader = cloudinary.NewCloudinaryUploader(cld)
	} else {
		log.Println("CLOUDINARY_URL not set - CV uploads disabled")
	}

	mail := mailer.New(cfg)
	auth := helper.SetupAuth(cfg.AccessSecret)

	app := NewApp(db, auth, mail, uploader, producer, cfg.ClientURL)

	addr := cfg.ServerPort
	if addr == "" {
		addr = ":5000"
	}
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}

// migrate runs AutoMigrate under a pg advisory lock so multiple replicas do
// not race the schema.
func migrate(db *gorm.DB) error {
	const migrateLockID int64 = 20260828

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		return err
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	return db.AutoMigrate(
		&domain.User{},
		&domain.PendingVerification{},
		&domain.Job{},
		&domain.Notification{},
	)
}
