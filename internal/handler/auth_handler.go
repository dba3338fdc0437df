package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"orderbridge/internal/middleware"
	"orderbridge/internal/models"
	"orderbridge/internal/service"
	"orderbridge/internal/utils"
)

type AuthHandler struct {
	auth  *service.AuthService
	users service.UserStore
}

func NewAuthHandler(auth *service.AuthService, users service.UserStore) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

// Login exchanges credentials for a token pair.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err)
	}
	if req.Username == "" || req.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "username and password are required", nil)
	}

	resp, err := h.auth.Login(c.Context(), req)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid credentials", nil)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "login failed", err)
	}
	return utils.SuccessResponse(c, "login successful", resp)
}

// Refresh exchanges a refresh token for a new token pair.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req models.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err)
	}

	resp, err := h.auth.Refresh(c.Context(), req.RefreshToken)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid refresh token", nil)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "refresh failed", err)
	}
	return utils.SuccessResponse(c, "token refreshed", resp)
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.users.FindByID(c.Context(), middleware.CurrentUserID(c))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "lookup failed", err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
	}
	return utils.SuccessResponse(c, "ok", user)
}
