package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-shopstock-api/internal/ai"
	"go-shopstock-api/internal/handler"
	"go-shopstock-api/internal/middleware"
	"go-shopstock-api/internal/model"
	"go-shopstock-api/internal/repository"
	"go-shopstock-api/internal/service"
	"go-shopstock-api/internal/ws"
	"go-shopstock-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Logger
	initLogger()
	defer func() { _ = zap.L().Sync() }()

	// 3. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (use a dedicated migration tool in production)
	if err := db.AutoMigrate(&model.User{}, &model.Shop{}, &model.Category{}, &model.Product{}); err != nil {
		zap.L().Fatal("database migration failed", zap.Error(err))
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	shopRepo := repository.NewShopRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)

	authService := service.NewAuthService(userRepo, wsHub)
	shopService := service.NewShopService(shopRepo, wsHub)
	invService := service.NewInventoryService(shopRepo, categoryRepo, productRepo, db, wsHub)
	exportService := service.NewExportService(shopRepo, categoryRepo, productRepo)
	aiService := service.NewAIService(shopRepo, categoryRepo, ai.NewClient())

	authHandler := handler.NewAuthHandler(authService)
	shopHandler := handler.NewShopHandler(shopService, invService)
	invHandler := handler.NewInventoryHandler(invService)
	exportHandler := handler.NewExportHandler(exportService)
	aiHandler := handler.NewAIHandler(aiService)
	imageHandler := handler.NewImageHandler()

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "ShopStock API v1.0",
		// Inline data-URI images ride inside product payloads
		BodyLimit: 8 * 1024 * 1024,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.SignUp)
	auth.Post("/signin", authHandler.SignIn)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	protected.Post("/auth/signout", authHandler.SignOut)
	protected.Get("/auth/session", authHandler.Session)

	// Shop Routes
	protected.Get("/shops", shopHandler.ListShops)
	protected.Post("/shops", shopHandler.CreateShop)
	protected.Get("/shops/:shopId/stats", shopHandler.Stats)
	protected.Get("/shops/:shopId/export", exportHandler.ExportCSV)

	// Category Routes
	protected.Get("/shops/:shopId/categories", invHandler.ListCategories)
	protected.Post("/shops/:shopId/categories", invHandler.CreateCategory)
	protected.Put("/categories/:id", invHandler.UpdateCategory)
	protected.Delete("/categories/:id", invHandler.DeleteCategory)

	// Product Routes
	protected.Get("/shops/:shopId/products", invHandler.ListProducts)
	protected.Post("/shops/:shopId/products", invHandler.CreateProduct)
	protected.Put("/products/:id", invHandler.UpdateProduct)
	protected.Delete("/products/:id", invHandler.DeleteProduct)
	protected.Patch("/products/:id/quantity", invHandler.UpdateQuantity)

	// AI Suggestion Route
	protected.Post("/shops/:shopId/ai/suggest", aiHandler.Suggest)

	// Image Intake Route
	protected.Post("/images", imageHandler.Upload)

	// WebSocket Route (change-notification subscription)
	app.Use("/ws", middleware.RequireWSAuth(userRepo))
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			zap.L().Panic("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exited")
}

// initLogger installs the global zap logger. LOG_LEVEL=debug switches to the
// development config.
func initLogger() {
	var cfg zap.Config
	if os.Getenv("LOG_LEVEL") == "debug" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		log.Fatal("failed to initialize logger: ", err)
	}
	zap.ReplaceGlobals(l)
}
