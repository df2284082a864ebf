package handler

import (
	"go-stocktrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.AddProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid JSON body")
	}

	product, err := h.service.AddProduct(&req)
	if err != nil {
		return respondBusinessError(c, err)
	}

	return respondMessage(c, fiber.StatusCreated, "product created", product)
}

// UpdateStock applies a stock delta to a product identified by its business
// key. Body: {quantity, transactionType}.
func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	productID := c.Params("id")

	var req service.StockDeltaRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid JSON body")
	}

	result, err := h.service.ApplyStockDelta(productID, &req)
	if err != nil {
		return respondBusinessError(c, err)
	}

	return respondMessage(c, fiber.StatusOK, "stock updated", result)
}

func (h *InventoryHandler) CreateTransaction(c *fiber.Ctx) error {
	var req service.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid JSON body")
	}

	result, err := h.service.CreateTransaction(&req)
	if err != nil {
		return respondBusinessError(c, err)
	}

	return respondMessage(c, fiber.StatusCreated, "transaction recorded", result)
}

func (h *InventoryHandler) GetTransaction(c *fiber.Ctx) error {
	transaction, err := h.service.GetTransaction(c.Params("id"))
	if err != nil {
		return respondBusinessError(c, err)
	}
	return respondData(c, fiber.StatusOK, transaction)
}
