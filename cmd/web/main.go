package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hibiken/asynq"

	"orderbridge/internal/config"
	"orderbridge/internal/database"
	"orderbridge/internal/handler"
	"orderbridge/internal/repository"
	"orderbridge/internal/router"
	"orderbridge/internal/service"
	"orderbridge/internal/utils"
)

func main() {
	cfg := config.Load()
	log := utils.GetLogger()

	db, err := database.NewMySQL(cfg)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()

	queue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer queue.Close()

	// Repositories
	users := repository.NewUserRepository(db)
	uploads := repository.NewFileUploadRepository(db)
	transactions := repository.NewOrderTransactionRepository(db)
	platforms := repository.NewSalesPlatformRepository(db)
	shopifyOrders := repository.NewShopifyOrderRepository(db)
	shopeeOrders := repository.NewShopeeOrderRepository(db)
	tiktokOrders := repository.NewTiktokOrderRepository(db)
	productMasters := repository.NewProductMasterRepository(db)
	vatRates := repository.NewVatRateRepository(db)

	// Services
	validate := service.NewValidateService(productMasters)
	shopify := service.NewShopifyService(transactions, platforms, shopifyOrders, productMasters, vatRates, validate)
	shopee := service.NewShopeeService(transactions, platforms, shopeeOrders, productMasters, vatRates, validate)
	tiktok := service.NewTiktokService(transactions, platforms, tiktokOrders, productMasters, vatRates, validate)
	productMaster := service.NewProductMasterService(productMasters)
	imports := service.NewImportService(shopify, shopee, tiktok, productMaster, cfg.Upload.SheetIndex)
	auth := service.NewAuthService(users, cfg)

	// Handlers
	authHandler := handler.NewAuthHandler(auth, users)
	uploadHandler := handler.NewUploadHandler(cfg, imports, uploads, queue)
	transactionHandler := handler.NewTransactionHandler(transactions, platforms, shopifyOrders, shopeeOrders, tiktokOrders, validate)
	productMasterHandler := handler.NewProductMasterHandler(productMasters)

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: cfg.Upload.MaxSizeMB * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	router.Setup(app, cfg, authHandler, uploadHandler, transactionHandler, productMasterHandler)

	go func() {
		if err := app.Listen(":" + cfg.App.Port); err != nil {
			log.WithError(err).Fatal("server stopped")
		}
	}()
	log.WithField("port", cfg.App.Port).Info("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Error("shutdown failed")
	}
}
