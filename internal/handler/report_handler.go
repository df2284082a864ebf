package handler

import (
	"time"

	"go-stocktrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// parseDateRange reads ?startDate and ?endDate (YYYY-MM-DD). Missing values
// default to the trailing 30 days.
func parseDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	endDate := time.Now()
	if raw := c.Query("endDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		// Inclusive end of day.
		endDate = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	startDate := endDate.AddDate(0, 0, -30)
	if raw := c.Query("startDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		startDate = parsed
	}

	return startDate, endDate, nil
}

func (h *ReportHandler) ListProducts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	products, total, err := h.service.ListProducts(c.Query("category"), page, limit)
	if err != nil {
		return respondBusinessError(c, err)
	}

	return respondPage(c, products, newPagination(page, limit, total))
}

func (h *ReportHandler) InventoryValuation(c *fiber.Ctx) error {
	valuation, err := h.service.InventoryValuation()
	if err != nil {
		return respondBusinessError(c, err)
	}
	return respondData(c, fiber.StatusOK, valuation)
}

func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", -1)

	products, err := h.service.LowStock(threshold)
	if err != nil {
		return respondBusinessError(c, err)
	}
	return respondData(c, fiber.StatusOK, products)
}

func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	startDate, endDate, err := parseDateRange(c)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	rows, total, err := h.service.Sales(startDate, endDate, c.Query("groupBy", "month"), page, limit)
	if err != nil {
		return respondBusinessError(c, err)
	}

	return respondPage(c, rows, newPagination(page, limit, total))
}

func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	startDate, endDate, err := parseDateRange(c)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	rows, err := h.service.TopProducts(startDate, endDate, c.QueryInt("limit", 10))
	if err != nil {
		return respondBusinessError(c, err)
	}
	return respondData(c, fiber.StatusOK, rows)
}

func (h *ReportHandler) History(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	transactions, total, err := h.service.History(c.Params("id"), page, limit)
	if err != nil {
		return respondBusinessError(c, err)
	}

	return respondPage(c, transactions, newPagination(page, limit, total))
}
