package handler

import (
	"github.com/gofiber/fiber/v2"

	"orderbridge/internal/models"
	"orderbridge/internal/repository"
	"orderbridge/internal/utils"
)

type ProductMasterHandler struct {
	products *repository.ProductMasterRepository
}

func NewProductMasterHandler(products *repository.ProductMasterRepository) *ProductMasterHandler {
	return &ProductMasterHandler{products: products}
}

// List returns a page of the material catalog.
func (h *ProductMasterHandler) List(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)
	rows, err := h.products.List(c.Context(), params.Search, params.Limit, utils.GetOffset(params.Page, params.Limit))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "list failed", err)
	}
	total, err := h.products.Count(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "count failed", err)
	}

	message := models.MsgGetDataSuccess
	if len(rows) == 0 {
		message = models.MsgNoDataFound
	}
	return utils.SuccessResponse(c, message, fiber.Map{
		"productMasters": rows,
		"pagination":     utils.CalculatePagination(params.Page, params.Limit, total),
	})
}
