package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-stocktrack/internal/config"
	"go-stocktrack/internal/handler"
	"go-stocktrack/internal/logger"
	"go-stocktrack/internal/middleware"
	"go-stocktrack/internal/model"
	"go-stocktrack/internal/notify"
	"go-stocktrack/internal/repository"
	"go-stocktrack/internal/service"
	"go-stocktrack/internal/ws"
	"go-stocktrack/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("failed to build logger: ", err)
	}
	defer zlog.Sync()

	// No store, no service: storage failure at startup aborts the process.
	db, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := db.AutoMigrate(
		&model.Product{},
		&model.Customer{},
		&model.Supplier{},
		&model.Transaction{},
		&model.User{},
	); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}

	seedAdmin(db, cfg, zlog)

	wsHub := ws.NewHub(zlog)
	go wsHub.Run()

	dispatcher := notify.NewDispatcher(zlog)
	registerObservers(dispatcher, wsHub, zlog)

	// Wiring
	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	userRepo := repository.NewUserRepo(db)

	invService := service.NewInventoryService(productRepo, txRepo, db, dispatcher, cfg.LowStockThreshold)
	reportService := service.NewReportService(productRepo, txRepo, cfg.LowStockThreshold)
	authService := service.NewAuthService(userRepo, []byte(cfg.JWTSecret))

	invHandler := handler.NewInventoryHandler(invService)
	reportHandler := handler.NewReportHandler(reportService)
	partyHandler := handler.NewPartyHandler(customerRepo, supplierRepo)
	authHandler := handler.NewAuthHandler(authService)

	app := fiber.New(fiber.Config{
		AppName: "stocktrack v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// Auth
	app.Post("/auth/login", authHandler.Login)
	app.Post("/auth/validate-token", authHandler.ValidateToken)

	// Products and stock mutation
	app.Post("/products", invHandler.CreateProduct)
	app.Get("/products", reportHandler.ListProducts)
	app.Put("/products/:id", invHandler.UpdateStock)
	app.Get("/products/:id/history", reportHandler.History)

	// Transactions
	app.Post("/transactions", invHandler.CreateTransaction)
	app.Get("/transactions/:id", invHandler.GetTransaction)

	// Reports
	app.Get("/reports/inventory", reportHandler.InventoryValuation)
	app.Get("/reports/low-stock", reportHandler.LowStock)
	app.Get("/reports/sales", reportHandler.Sales)
	app.Get("/reports/top-products", reportHandler.TopProducts)

	// Reference data (operator surface, token required for writes)
	app.Get("/customers", partyHandler.ListCustomers)
	app.Post("/customers", middleware.RequireAuth([]byte(cfg.JWTSecret)), partyHandler.CreateCustomer)
	app.Get("/suppliers", partyHandler.ListSuppliers)
	app.Post("/suppliers", middleware.RequireAuth([]byte(cfg.JWTSecret)), partyHandler.CreateSupplier)

	// Notification stream
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
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// Unmatched routes
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "route not found",
		})
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}
	zlog.Info("server exited")
}

// registerObservers wires the notification side channels: structured logging
// and the websocket stream. Observers consume snapshots only.
func registerObservers(dispatcher *notify.Dispatcher, hub *ws.Hub, zlog *zap.Logger) {
	dispatcher.Subscribe(notify.EventLowStock, func(payload interface{}) {
		if alert, ok := payload.(notify.LowStockAlert); ok {
			zlog.Warn("low stock alert",
				zap.String("productId", alert.ProductID),
				zap.String("name", alert.Name),
				zap.Int("newStock", alert.NewStock),
				zap.Int("threshold", alert.Threshold),
			)
		}
	})
	dispatcher.Subscribe(notify.EventLowStock, func(payload interface{}) {
		hub.BroadcastEvent("low_stock", payload)
	})

	dispatcher.Subscribe(notify.EventTransactionComplete, func(payload interface{}) {
		if snapshot, ok := payload.(notify.TransactionCompleted); ok {
			zlog.Info("transaction completed",
				zap.String("transactionId", snapshot.TransactionID),
				zap.String("productId", snapshot.ProductID),
				zap.String("type", snapshot.Type),
				zap.Int("quantity", snapshot.Quantity),
				zap.Int64("totalAmount", snapshot.TotalAmount),
			)
		}
	})
	dispatcher.Subscribe(notify.EventTransactionComplete, func(payload interface{}) {
		hub.BroadcastEvent("transaction_complete", payload)
	})
}

// seedAdmin creates the default operator account if it does not exist.
func seedAdmin(db *gorm.DB, cfg *config.Config, zlog *zap.Logger) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail(cfg.AdminEmail); err == nil {
		return
	}

	admin := &model.User{
		Email:    cfg.AdminEmail,
		FullName: "Administrator",
		IsActive: true,
	}
	if err := admin.SetPassword(cfg.AdminPassword); err != nil {
		zlog.Warn("failed to hash admin password", zap.Error(err))
		return
	}
	if err := userRepo.Create(admin); err != nil {
		zlog.Warn("failed to create admin user", zap.Error(err))
		return
	}
	zlog.Info("admin user created", zap.String("email", cfg.AdminEmail))
}
