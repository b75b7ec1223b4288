package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	config "github.com/learnai/marketplace-backend/configs"
	"github.com/learnai/marketplace-backend/database"
	"github.com/learnai/marketplace-backend/handlers"
	"github.com/learnai/marketplace-backend/jobs"
	"github.com/learnai/marketplace-backend/notifications"
	"github.com/learnai/marketplace-backend/payments"
	"github.com/learnai/marketplace-backend/routes"
	"github.com/learnai/marketplace-backend/services"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("🔥 Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("🔥 %v", err)
	}

	emailService := notifications.NewEmailService(cfg.Email)

	var paypalService *payments.PayPalService
	if cfg.PayPal.Configured() {
		paypalService = payments.NewPayPalService(cfg.PayPal)
	} else {
		log.Println("⚠️ PayPal credentials not configured, order creation is disabled.")
	}

	var explainer services.Explainer
	if cfg.OpenAI.Configured() {
		explainer = services.NewOpenAIExplainer(cfg.OpenAI)
	} else {
		log.Println("⚠️ OpenAI API key not configured, recommendations run in degraded mode.")
	}
	recommendations := services.NewRecommendationService(db, explainer)
	agents := services.NewContextForgeService(cfg.ContextForge)

	c := cron.New()
	c.AddFunc("*/10 * * * *", func() { jobs.ExpirePendingBookings(db) })
	go c.Start()
	log.Println("✅ Cron job for booking expiry scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "LearnAI Marketplace",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to LearnAI Marketplace API",
		})
	})

	authHandler := &handlers.AuthHandler{DB: db, JWTSecret: cfg.JWTSecret, Email: emailService}
	bookingHandler := &handlers.BookingHandler{DB: db}
	paymentHandler := &handlers.PaymentHandler{DB: db, PayPal: paypalService, Email: emailService}
	teacherHandler := &handlers.TeacherHandler{DB: db}
	aiHandler := &handlers.AIHandler{Recommendations: recommendations}
	learnHandler := &handlers.LearnHandler{Agents: agents}
	adminHandler := &handlers.AdminHandler{DB: db}
	healthHandler := &handlers.HealthHandler{DB: db}

	routes.AuthRoutes(app, authHandler)
	routes.BookingRoutes(app, bookingHandler, cfg.JWTSecret)
	routes.PaymentRoutes(app, paymentHandler, cfg.JWTSecret)
	routes.TeacherRoutes(app, teacherHandler, cfg.JWTSecret)
	routes.AIRoutes(app, aiHandler)
	routes.LearnRoutes(app, learnHandler)
	routes.AdminRoutes(app, adminHandler, cfg.JWTSecret)

	app.Get("/health", healthHandler.Check)

	log.Printf("✅ Server is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
