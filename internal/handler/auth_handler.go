package handler

import (
	"go-stocktrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type validateTokenRequest struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid JSON body")
	}

	resp, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, fiber.StatusUnauthorized, err.Error())
	}
	return respondData(c, fiber.StatusOK, resp)
}

func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	var req validateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid JSON body")
	}

	user, err := h.service.ValidateToken(req.Token)
	if err != nil {
		return respondError(c, fiber.StatusUnauthorized, err.Error())
	}
	return respondData(c, fiber.StatusOK, user)
}
