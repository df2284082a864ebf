package service

import (
	"go-stocktrack/internal/apperr"
	"go-stocktrack/internal/model"
	"go-stocktrack/internal/notify"
	"go-stocktrack/internal/repository"
	"go-stocktrack/pkg/validator"

	"gorm.io/gorm"
)

type AddProductRequest struct {
	ProductID   string `json:"productId" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Price       int64  `json:"price" validate:"min=0"`
	Stock       int    `json:"stock" validate:"min=0"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
	SupplierID  string `json:"supplierId"`
}

type StockDeltaRequest struct {
	Quantity        int                   `json:"quantity" validate:"required"`
	TransactionType model.TransactionType `json:"transactionType" validate:"required,oneof=sale purchase restock return adjustment"`
}

type CreateTransactionRequest struct {
	TransactionID string                `json:"transactionId" validate:"required"`
	ProductID     string                `json:"productId" validate:"required"`
	Quantity      int                   `json:"quantity" validate:"required,min=1"`
	Type          model.TransactionType `json:"type" validate:"required,oneof=sale purchase restock return adjustment"`
	CustomerID    string                `json:"customerId" validate:"required"`
	SupplierID    string                `json:"supplierId"`
	Discount      int64                 `json:"discount" validate:"min=0"`
	Notes         string                `json:"notes"`
}

type StockDeltaResult struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	OldStock  int    `json:"oldStock"`
	NewStock  int    `json:"newStock"`
}

type CreateTransactionResult struct {
	TransactionID string `json:"transactionId"`
	TotalAmount   int64  `json:"totalAmount"`
	NewStock      int    `json:"newStock"`
}

type InventoryService interface {
	AddProduct(req *AddProductRequest) (*model.Product, error)
	ApplyStockDelta(productID string, req *StockDeltaRequest) (*StockDeltaResult, error)
	CreateTransaction(req *CreateTransactionRequest) (*CreateTransactionResult, error)
	GetTransaction(transactionID string) (*model.Transaction, error)
}

type inventoryService struct {
	products          repository.ProductRepository
	transactions      repository.TransactionRepository
	db                *gorm.DB
	dispatcher        *notify.Dispatcher
	lowStockThreshold int
}

func NewInventoryService(
	products repository.ProductRepository,
	transactions repository.TransactionRepository,
	db *gorm.DB,
	dispatcher *notify.Dispatcher,
	lowStockThreshold int,
) InventoryService {
	return &inventoryService{
		products:          products,
		transactions:      transactions,
		db:                db,
		dispatcher:        dispatcher,
		lowStockThreshold: lowStockThreshold,
	}
}

// deltaFor maps a transaction type to a signed stock change. Sales decrement;
// purchases, restocks and returns increment (a return is inventory coming
// back); adjustments carry an explicit signed quantity. Both mutation paths
// share this single mapping.
func deltaFor(txType model.TransactionType, quantity int) (int, error) {
	switch txType {
	case model.TxSale:
		if quantity < 1 {
			return 0, &apperr.ValidationError{Field: "quantity", Rule: "min"}
		}
		return -quantity, nil
	case model.TxPurchase, model.TxRestock, model.TxReturn:
		if quantity < 1 {
			return 0, &apperr.ValidationError{Field: "quantity", Rule: "min"}
		}
		return quantity, nil
	case model.TxAdjustment:
		if quantity == 0 {
			return 0, &apperr.ValidationError{Field: "quantity", Rule: "required"}
		}
		return quantity, nil
	default:
		return 0, apperr.ErrInvalidTransactionType
	}
}

func (s *inventoryService) AddProduct(req *AddProductRequest) (*model.Product, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	if _, err := s.products.FindByProductID(req.ProductID); err == nil {
		return nil, apperr.ErrDuplicateProduct
	} else if !repository.IsNotFound(err) {
		return nil, err
	}

	product := &model.Product{
		ProductID:   req.ProductID,
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.SupplierID != "" {
		product.SupplierID = &req.SupplierID
	}

	if err := s.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *inventoryService) ApplyStockDelta(productID string, req *StockDeltaRequest) (*StockDeltaResult, error) {
	if productID == "" {
		return nil, &apperr.ValidationError{Field: "productId", Rule: "required"}
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	delta, err := deltaFor(req.TransactionType, req.Quantity)
	if err != nil {
		return nil, err
	}

	var result StockDeltaResult
	err = s.db.Transaction(func(tx *gorm.DB) error {
		product, err := s.products.FindByProductIDTx(tx, productID)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperr.ErrProductNotFound
			}
			return err
		}

		applied, err := s.products.ApplyStockDelta(tx, productID, delta)
		if err != nil {
			return err
		}
		if !applied {
			return &apperr.InsufficientStockError{
				ProductID: productID,
				Available: product.Stock,
				Requested: -delta,
			}
		}

		// Re-read inside the unit of work: the post-update value, not the
		// possibly stale pre-read.
		fresh, err := s.products.FindByProductIDTx(tx, productID)
		if err != nil {
			return err
		}
		result = StockDeltaResult{
			ProductID: productID,
			Name:      fresh.Name,
			OldStock:  fresh.Stock - delta,
			NewStock:  fresh.Stock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Only after commit; a rolled-back attempt raises nothing.
	s.notifyLowStock(result.ProductID, result.Name, result.NewStock)
	return &result, nil
}

func (s *inventoryService) CreateTransaction(req *CreateTransactionRequest) (*CreateTransactionResult, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	delta, err := deltaFor(req.Type, req.Quantity)
	if err != nil {
		return nil, err
	}

	var (
		recorded    model.Transaction
		productName string
		newStock    int
	)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		product, err := s.products.FindByProductIDTx(tx, req.ProductID)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperr.ErrProductNotFound
			}
			return err
		}

		exists, err := s.transactions.ExistsTx(tx, req.TransactionID)
		if err != nil {
			return err
		}
		if exists {
			return apperr.ErrDuplicateTransaction
		}

		// Price integrity belongs to the product record, never the request.
		totalAmount := product.Price*int64(req.Quantity) - req.Discount

		recorded = model.Transaction{
			TransactionID: req.TransactionID,
			ProductID:     req.ProductID,
			Type:          req.Type,
			Quantity:      req.Quantity,
			UnitPrice:     product.Price,
			TotalAmount:   totalAmount,
			Discount:      req.Discount,
			Notes:         req.Notes,
		}
		if req.CustomerID != "" {
			recorded.CustomerID = &req.CustomerID
		}
		if req.SupplierID != "" {
			recorded.SupplierID = &req.SupplierID
		}

		if err := s.transactions.Create(tx, &recorded); err != nil {
			return err
		}

		applied, err := s.products.ApplyStockDelta(tx, req.ProductID, delta)
		if err != nil {
			return err
		}
		if !applied {
			return &apperr.InsufficientStockError{
				ProductID: req.ProductID,
				Available: product.Stock,
				Requested: req.Quantity,
			}
		}

		fresh, err := s.products.FindByProductIDTx(tx, req.ProductID)
		if err != nil {
			return err
		}
		productName = fresh.Name
		newStock = fresh.Stock
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(notify.EventTransactionComplete, notify.TransactionCompleted{
		TransactionID: recorded.TransactionID,
		ProductID:     recorded.ProductID,
		CustomerID:    req.CustomerID,
		Type:          string(recorded.Type),
		Quantity:      recorded.Quantity,
		UnitPrice:     recorded.UnitPrice,
		TotalAmount:   recorded.TotalAmount,
		NewStock:      newStock,
	})
	s.notifyLowStock(recorded.ProductID, productName, newStock)

	return &CreateTransactionResult{
		TransactionID: recorded.TransactionID,
		TotalAmount:   recorded.TotalAmount,
		NewStock:      newStock,
	}, nil
}

func (s *inventoryService) GetTransaction(transactionID string) (*model.Transaction, error) {
	transaction, err := s.transactions.FindByTransactionID(transactionID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction, nil
}

func (s *inventoryService) notifyLowStock(productID, name string, newStock int) {
	if newStock <= s.lowStockThreshold {
		s.dispatcher.Dispatch(notify.EventLowStock, notify.LowStockAlert{
			ProductID: productID,
			Name:      name,
			NewStock:  newStock,
			Threshold: s.lowStockThreshold,
		})
	}
}
