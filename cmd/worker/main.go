package main

import (
	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"

	"orderbridge/internal/config"
	"orderbridge/internal/database"
	"orderbridge/internal/repository"
	"orderbridge/internal/service"
	"orderbridge/internal/utils"
	"orderbridge/internal/worker"
)

func main() {
	cfg := config.Load()
	log := utils.GetLogger()

	db, err := database.NewMySQL(cfg)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()

	// Connectivity check only; asynq manages its own connections.
	rdb, err := database.NewRedis(cfg)
	if err != nil {
		log.WithError(err).Fatal("redis connection failed")
	}
	rdb.Close()

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	// Repositories
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

	processor := worker.NewProcessor(imports, productMaster, uploads, cfg.Upload.SheetIndex)

	// Scheduled catalog refresh, enqueued through the same queue as
	// manual runs so retries and timeouts behave identically.
	if cfg.Cron.ProductMasterSpec != "" && cfg.Cron.ProductMasterPath != "" {
		client := asynq.NewClient(redisOpt)
		defer client.Close()

		c := cron.New()
		_, err := c.AddFunc(cfg.Cron.ProductMasterSpec, func() {
			task, err := worker.NewRefreshProductMasterTask(worker.RefreshProductMasterPayload{
				Path: cfg.Cron.ProductMasterPath,
			})
			if err != nil {
				log.WithError(err).Error("could not build catalog refresh task")
				return
			}
			if _, err := client.Enqueue(task); err != nil {
				log.WithError(err).Error("could not queue catalog refresh")
			}
		})
		if err != nil {
			log.WithError(err).Fatal("invalid catalog refresh schedule")
		}
		c.Start()
		defer c.Stop()
		log.WithField("spec", cfg.Cron.ProductMasterSpec).Info("catalog refresh scheduled")
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: cfg.Upload.WorkerQueues,
		Queues: map[string]int{
			"default": 10,
		},
	})

	mux := asynq.NewServeMux()
	processor.Register(mux)

	log.Info("worker started")
	if err := srv.Run(mux); err != nil {
		log.WithError(err).Fatal("worker stopped")
	}
}
