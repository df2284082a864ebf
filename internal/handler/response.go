package handler

import (
	"errors"
	"time"

	"go-stocktrack/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// Pagination is the envelope returned by every paginated listing.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

func newPagination(page, limit int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
	}
}

func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func respondMessage(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func respondPage(c *fiber.Ctx, data interface{}, pagination Pagination) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"data":       data,
		"pagination": pagination,
	})
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success":   false,
		"error":     message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// respondBusinessError maps the error taxonomy to HTTP statuses: every
// recoverable business failure is a 400; only unexpected or storage failures
// surface as 500.
func respondBusinessError(c *fiber.Ctx, err error) error {
	var ve *apperr.ValidationError
	var ise *apperr.InsufficientStockError

	switch {
	case errors.As(err, &ve),
		errors.As(err, &ise),
		errors.Is(err, apperr.ErrDuplicateProduct),
		errors.Is(err, apperr.ErrDuplicateTransaction),
		errors.Is(err, apperr.ErrProductNotFound),
		errors.Is(err, apperr.ErrTransactionNotFound),
		errors.Is(err, apperr.ErrInvalidTransactionType):
		return respondError(c, fiber.StatusBadRequest, err.Error())
	default:
		return respondError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
