package router

import (
	"github.com/gofiber/fiber/v2"

	"orderbridge/internal/config"
	"orderbridge/internal/handler"
	"orderbridge/internal/middleware"
)

// Setup mounts all HTTP routes.
func Setup(app *fiber.App, cfg *config.Config, auth *handler.AuthHandler, uploads *handler.UploadHandler, transactions *handler.TransactionHandler, products *handler.ProductMasterHandler) {
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "app": cfg.App.Name})
	})

	authGroup := api.Group("/auth")
	authGroup.Post("/login", auth.Login)
	authGroup.Post("/refresh", auth.Refresh)

	protected := api.Group("", middleware.Auth(cfg.JWT.Secret))
	protected.Get("/auth/me", auth.Me)

	protected.Post("/files/detect", uploads.Detect)
	protected.Post("/files/upload", uploads.Upload)
	protected.Get("/files/uploads", uploads.List)
	protected.Get("/files/uploads/:code", uploads.Status)

	protected.Get("/order-transactions", transactions.List)
	protected.Post("/order-transactions/validate", transactions.Validate)
	protected.Post("/order-transactions/check-duplicates", transactions.CheckDuplicates)

	protected.Get("/product-masters", products.List)
}
