package main

import (
	"log"
	"os"
	"time"

	"outliner/database"
	"outliner/handlers"
	"outliner/middleware"
	"outliner/refscan"
	"outliner/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Initialize database
	database.InitDB()

	// Initialize services
	services.InitVerseStore(database.GetDB())
	services.InitSessionStore()
	defer func() {
		if store := services.GetSessionStore(); store != nil {
			store.Stop()
		}
	}()

	var opts []refscan.Option
	if suggester := services.NewOpenAISuggesterFromEnv(); suggester != nil {
		log.Println("✅ LLM reference suggester enabled")
		opts = append(opts, refscan.WithSuggester(suggester))
	}
	services.InitOutlineService(refscan.NewEngine(opts...), services.GetVerseStore(), services.GetSessionStore())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.FiberRateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Outline routes; uploads run the full detection pass, so they get
	// a stricter limit
	outlineGroup := api.Group("/outlines")
	outlineGroup.Post("/", middleware.FiberUploadRateLimitMiddleware(), handlers.UploadOutline)
	outlineGroup.Get("/:id", handlers.GetOutline)
	outlineGroup.Post("/:id/populate", handlers.PopulateOutline)
	outlineGroup.Delete("/:id", handlers.DeleteOutline)

	// Bible text routes
	bibleGroup := api.Group("/bible")
	bibleGroup.Get("/books", handlers.GetBooks)
	bibleGroup.Get("/verse", handlers.GetVerse)
	bibleGroup.Get("/chapter", handlers.GetChapter)
	bibleGroup.Get("/search", handlers.SearchVerses)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
