package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/KaryampudiMadhav/yugantha-backend/config"
	"github.com/KaryampudiMadhav/yugantha-backend/controllers"
	"github.com/KaryampudiMadhav/yugantha-backend/middleware"
	"github.com/KaryampudiMadhav/yugantha-backend/repositories"
	"github.com/KaryampudiMadhav/yugantha-backend/routes"
	"github.com/KaryampudiMadhav/yugantha-backend/utils"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// Connect to Redis (optional, OTP attempt limiting only)
	redisClient := config.ConnectRedis()

	// Connect to database
	client := config.ConnectDB()
	db := config.GetDatabase(client)

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	customValidator := &CustomValidator{validator: validator.New()}
	e.Validator = customValidator

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "Yugantha Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	})

	// Mail transport for OTP delivery
	mailer, err := utils.NewSMTPMailerFromEnv()
	if err != nil {
		log.Printf("Warning: %v - OTP emails will fail until SMTP is configured", err)
	}

	// Initialize repositories
	accountRepo := repositories.NewMongoAccountRepository(db)
	leadRepo := repositories.NewLeadRepository(db)

	// Initialize controllers
	authController := controllers.NewAuthController(accountRepo)
	passwordController := controllers.NewPasswordController(accountRepo, mailerOrNil(mailer, err), redisClient)
	adminController := controllers.NewAdminController(accountRepo)
	leadController := controllers.NewLeadController(leadRepo)

	// Register routes
	routes.RegisterAuthRoutes(e, authController, passwordController)
	routes.RegisterLeadRoutes(e, leadController)
	routes.RegisterAdminRoutes(e, adminController, leadController)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

// mailerOrNil keeps the Mailer interface nil when SMTP configuration is
// missing, so the typed-nil pointer never masks the check in the controller.
func mailerOrNil(m *utils.SMTPMailer, err error) utils.Mailer {
	if err != nil {
		return nil
	}
	return m
}
