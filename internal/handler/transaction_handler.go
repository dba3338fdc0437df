package handler

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"orderbridge/internal/models"
	"orderbridge/internal/repository"
	"orderbridge/internal/service"
	"orderbridge/internal/utils"
)

// Duplicate pre-check stores, one per platform's source-row key. The
// platform order repositories satisfy them.

type ShopifyDuplicateStore interface {
	FindExisting(ctx context.Context, candidates []models.ShopifyOrderRecord) (map[string]bool, error)
}

type ShopeeDuplicateStore interface {
	FindExisting(ctx context.Context, candidates []models.ShopeeOrderRecord) (map[string]bool, error)
}

type TiktokDuplicateStore interface {
	FindExisting(ctx context.Context, candidates []models.TiktokOrderRecord) (map[string]bool, error)
}

type TransactionHandler struct {
	transactions  *repository.OrderTransactionRepository
	platforms     *repository.SalesPlatformRepository
	shopifyOrders ShopifyDuplicateStore
	shopeeOrders  ShopeeDuplicateStore
	tiktokOrders  TiktokDuplicateStore
	validate      *service.ValidateService
}

func NewTransactionHandler(transactions *repository.OrderTransactionRepository, platforms *repository.SalesPlatformRepository, shopifyOrders ShopifyDuplicateStore, shopeeOrders ShopeeDuplicateStore, tiktokOrders TiktokDuplicateStore, validate *service.ValidateService) *TransactionHandler {
	return &TransactionHandler{
		transactions:  transactions,
		platforms:     platforms,
		shopifyOrders: shopifyOrders,
		shopeeOrders:  shopeeOrders,
		tiktokOrders:  tiktokOrders,
		validate:      validate,
	}
}

// List returns stored transactions for one platform.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	platform := models.PlatformKind(strings.ToUpper(c.Query("platform")))
	if !knownPlatform(platform) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "unknown platform", nil)
	}

	platformID, err := h.platforms.EnsureID(c.Context(), platform)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "platform lookup failed", err)
	}

	params := utils.GetPaginationParams(c)
	txs, err := h.transactions.List(c.Context(), platformID, params.Limit, utils.GetOffset(params.Page, params.Limit))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "list failed", err)
	}
	total, err := h.transactions.Count(c.Context(), platformID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "count failed", err)
	}

	message := models.MsgGetDataSuccess
	if len(txs) == 0 {
		message = models.MsgNoDataFound
	}
	return utils.SuccessResponse(c, message, fiber.Map{
		"transactions": txs,
		"pagination":   utils.CalculatePagination(params.Page, params.Limit, total),
	})
}

// CheckDuplicates reports which of the submitted order lines were already
// imported, so clients can warn before re-posting a file. Candidates are
// matched on the same source-row key each platform's import uses.
func (h *TransactionHandler) CheckDuplicates(c *fiber.Ctx) error {
	platform := models.PlatformKind(strings.ToUpper(c.Query("platform")))
	switch platform {
	case models.PlatformShopify:
		return h.checkShopifyDuplicates(c)
	case models.PlatformShopee:
		return h.checkShopeeDuplicates(c)
	case models.PlatformTiktok:
		return h.checkTiktokDuplicates(c)
	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "unknown platform", nil)
	}
}

func (h *TransactionHandler) checkShopifyDuplicates(c *fiber.Ctx) error {
	var candidates []models.ShopifyOrderRecord
	if err := c.BodyParser(&candidates); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err)
	}

	existing, err := h.shopifyOrders.FindExisting(c.Context(), candidates)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "duplicate check failed", err)
	}

	duplicates := make([]models.ShopifyOrderRecord, 0, len(existing))
	for _, cand := range candidates {
		if existing[repository.ShopifyOrderKey(cand.OrderName, cand.LineitemSku)] {
			duplicates = append(duplicates, cand)
		}
	}
	return duplicatesResponse(c, len(duplicates), duplicates)
}

func (h *TransactionHandler) checkShopeeDuplicates(c *fiber.Ctx) error {
	var candidates []models.ShopeeOrderRecord
	if err := c.BodyParser(&candidates); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err)
	}

	existing, err := h.shopeeOrders.FindExisting(c.Context(), candidates)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "duplicate check failed", err)
	}

	duplicates := make([]models.ShopeeOrderRecord, 0, len(existing))
	for _, cand := range candidates {
		if existing[repository.ShopeeOrderKey(cand.OrderID, cand.BuyerName, cand.SkuReferenceNo)] {
			duplicates = append(duplicates, cand)
		}
	}
	return duplicatesResponse(c, len(duplicates), duplicates)
}

func (h *TransactionHandler) checkTiktokDuplicates(c *fiber.Ctx) error {
	var candidates []models.TiktokOrderRecord
	if err := c.BodyParser(&candidates); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err)
	}

	existing, err := h.tiktokOrders.FindExisting(c.Context(), candidates)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "duplicate check failed", err)
	}

	duplicates := make([]models.TiktokOrderRecord, 0, len(existing))
	for _, cand := range candidates {
		if existing[repository.TiktokOrderKey(cand.OrderID, cand.SellerSku)] {
			duplicates = append(duplicates, cand)
		}
	}
	return duplicatesResponse(c, len(duplicates), duplicates)
}

func duplicatesResponse(c *fiber.Ctx, count int, duplicates any) error {
	return utils.SuccessResponse(c, models.MsgGetDataSuccess, fiber.Map{
		"duplicates": duplicates,
		"count":      count,
	})
}

// Validate runs the batch validator over caller-supplied drafts without
// persisting anything. Lets clients pre-check a file fix before re-upload.
func (h *TransactionHandler) Validate(c *fiber.Ctx) error {
	var drafts []models.OrderTransactionDraft
	if err := c.BodyParser(&drafts); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err)
	}

	result, err := h.validate.ValidateBatch(c.Context(), drafts)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "validation failed", err)
	}
	if !result.Checker {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(result)
	}
	return c.JSON(result)
}

func knownPlatform(p models.PlatformKind) bool {
	for _, known := range models.AllPlatforms {
		if p == known {
			return true
		}
	}
	return false
}
