package handler

import (
	"go-stocktrack/internal/model"
	"go-stocktrack/internal/repository"
	"go-stocktrack/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// PartyHandler serves the customer and supplier reference entities. These are
// simple lookup tables consumed by transactions and products; no business
// workflow owns them.
type PartyHandler struct {
	customers repository.CustomerRepository
	suppliers repository.SupplierRepository
}

func NewPartyHandler(customers repository.CustomerRepository, suppliers repository.SupplierRepository) *PartyHandler {
	return &PartyHandler{customers: customers, suppliers: suppliers}
}

func (h *PartyHandler) CreateCustomer(c *fiber.Ctx) error {
	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := validator.ValidateStruct(&customer); err != nil {
		return respondBusinessError(c, err)
	}

	if _, err := h.customers.FindByCustomerID(customer.CustomerID); err == nil {
		return respondError(c, fiber.StatusBadRequest, "customer already exists")
	}

	if err := h.customers.Create(&customer); err != nil {
		return respondBusinessError(c, err)
	}
	return respondMessage(c, fiber.StatusCreated, "customer created", customer)
}

func (h *PartyHandler) ListCustomers(c *fiber.Ctx) error {
	customers, err := h.customers.FindAll()
	if err != nil {
		return respondBusinessError(c, err)
	}
	return respondData(c, fiber.StatusOK, customers)
}

func (h *PartyHandler) CreateSupplier(c *fiber.Ctx) error {
	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := validator.ValidateStruct(&supplier); err != nil {
		return respondBusinessError(c, err)
	}

	if _, err := h.suppliers.FindBySupplierID(supplier.SupplierID); err == nil {
		return respondError(c, fiber.StatusBadRequest, "supplier already exists")
	}

	if err := h.suppliers.Create(&supplier); err != nil {
		return respondBusinessError(c, err)
	}
	return respondMessage(c, fiber.StatusCreated, "supplier created", supplier)
}

func (h *PartyHandler) ListSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.suppliers.FindAll()
	if err != nil {
		return respondBusinessError(c, err)
	}
	return respondData(c, fiber.StatusOK, suppliers)
}
