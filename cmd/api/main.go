package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-inventory-pos/internal/config"
	"go-inventory-pos/internal/handler"
	"go-inventory-pos/internal/repository"
	"go-inventory-pos/internal/service"
	"go-inventory-pos/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := cfg.NewLogger()

	// 2. Setup Store
	store, err := repository.OpenStore(cfg, log)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub(cfg.Currency, log)
	go wsHub.Run()

	// 4. Restore Session (Wiring Layers)
	session, err := service.NewSession(
		repository.NewProductRepo(store),
		repository.NewOrderRepo(store),
		wsHub,
		log,
	)
	if err != nil {
		log.Fatalf("Failed to restore session: %v", err)
	}

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:   cfg.AppName,
		BodyLimit: 4 * 1024 * 1024, // room for a 2MB photo plus form fields
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	handler.Register(app.Group("/api/v1"), session)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
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

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Info("Server exited")
}
