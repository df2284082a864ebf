package service

import (
	"time"

	"go-stocktrack/internal/apperr"
	"go-stocktrack/internal/model"
	"go-stocktrack/internal/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ReportService interface {
	ListProducts(category string, page, limit int) ([]model.Product, int64, error)
	InventoryValuation() (*repository.InventoryValuation, error)
	LowStock(threshold int) ([]model.Product, error)
	Sales(startDate, endDate time.Time, groupBy string, page, limit int) ([]repository.SalesAggregationRow, int64, error)
	TopProducts(startDate, endDate time.Time, limit int) ([]repository.TopProductRow, error)
	History(productID string, page, limit int) ([]model.Transaction, int64, error)
}

type reportService struct {
	products          repository.ProductRepository
	transactions      repository.TransactionRepository
	lowStockThreshold int
}

func NewReportService(
	products repository.ProductRepository,
	transactions repository.TransactionRepository,
	lowStockThreshold int,
) ReportService {
	return &reportService{
		products:          products,
		transactions:      transactions,
		lowStockThreshold: lowStockThreshold,
	}
}

func normalizePage(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}
	return page, limit, (page - 1) * limit
}

func (s *reportService) ListProducts(category string, page, limit int) ([]model.Product, int64, error) {
	_, limit, offset := normalizePage(page, limit)
	return s.products.List(category, offset, limit)
}

func (s *reportService) InventoryValuation() (*repository.InventoryValuation, error) {
	return s.transactions.InventoryValuation()
}

func (s *reportService) LowStock(threshold int) ([]model.Product, error) {
	if threshold < 0 {
		threshold = s.lowStockThreshold
	}
	return s.products.FindLowStock(threshold)
}

func (s *reportService) Sales(startDate, endDate time.Time, groupBy string, page, limit int) ([]repository.SalesAggregationRow, int64, error) {
	switch groupBy {
	case "", "month", "category", "product":
	default:
		return nil, 0, &apperr.ValidationError{Field: "groupBy", Rule: "oneof"}
	}
	_, limit, offset := normalizePage(page, limit)
	return s.transactions.SalesAggregation(startDate, endDate, groupBy, offset, limit)
}

func (s *reportService) TopProducts(startDate, endDate time.Time, limit int) ([]repository.TopProductRow, error) {
	if limit < 1 || limit > maxPageSize {
		limit = 10
	}
	return s.transactions.TopProducts(startDate, endDate, limit)
}

func (s *reportService) History(productID string, page, limit int) ([]model.Transaction, int64, error) {
	if _, err := s.products.FindByProductID(productID); err != nil {
		if repository.IsNotFound(err) {
			return nil, 0, apperr.ErrProductNotFound
		}
		return nil, 0, err
	}
	_, limit, offset := normalizePage(page, limit)
	return s.transactions.HistoryByProduct(productID, offset, limit)
}
