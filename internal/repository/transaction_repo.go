package repository

import (
	"time"

	"go-stocktrack/internal/model"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(tx *gorm.DB, transaction *model.Transaction) error
	ExistsTx(tx *gorm.DB, transactionID string) (bool, error)
	FindByTransactionID(transactionID string) (*model.Transaction, error)
	HistoryByProduct(productID string, offset, limit int) ([]model.Transaction, int64, error)
	InventoryValuation() (*InventoryValuation, error)
	SalesAggregation(startDate, endDate time.Time, groupBy string, offset, limit int) ([]SalesAggregationRow, int64, error)
	TopProducts(startDate, endDate time.Time, limit int) ([]TopProductRow, error)
}

// InventoryValuation is the whole-inventory snapshot for the valuation report.
type InventoryValuation struct {
	TotalValue   int64 `json:"totalValue"`
	ProductCount int64 `json:"productCount"`
	UnitCount    int64 `json:"unitCount"`
}

// SalesAggregationRow is one group of the sales report. Bucket is a month
// (YYYY-MM), a category, or a product id depending on the grouping.
type SalesAggregationRow struct {
	Bucket           string `json:"bucket"`
	TransactionCount int64  `json:"transactionCount"`
	UnitsSold        int64  `json:"unitsSold"`
	Revenue          int64  `json:"revenue"`
}

// TopProductRow is one entry of the top-products-by-revenue report.
type TopProductRow struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitsSold int64  `json:"unitsSold"`
	Revenue   int64  `json:"revenue"`
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

// Create inserts the transaction row on the caller's unit of work so the
// insert commits or rolls back together with the stock update.
func (r *transactionRepo) Create(tx *gorm.DB, transaction *model.Transaction) error {
	return tx.Create(transaction).Error
}

func (r *transactionRepo) ExistsTx(tx *gorm.DB, transactionID string) (bool, error) {
	var count int64
	err := tx.Model(&model.Transaction{}).Where("transaction_id = ?", transactionID).Count(&count).Error
	return count > 0, err
}

func (r *transactionRepo) FindByTransactionID(transactionID string) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("Product").First(&transaction, "transaction_id = ?", transactionID).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepo) HistoryByProduct(productID string, offset, limit int) ([]model.Transaction, int64, error) {
	var total int64
	if err := r.db.Model(&model.Transaction{}).Where("product_id = ?", productID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []model.Transaction
	err := r.db.Where("product_id = ?", productID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&transactions).Error
	return transactions, total, err
}

func (r *transactionRepo) InventoryValuation() (*InventoryValuation, error) {
	var valuation InventoryValuation
	err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(stock * price), 0) as total_value, COUNT(*) as product_count, COALESCE(SUM(stock), 0) as unit_count").
		Scan(&valuation).Error
	if err != nil {
		return nil, err
	}
	return &valuation, nil
}

// salesQuery builds the grouped aggregate over sale rows. The month bucket
// uses a text prefix of created_at, which works on both postgres and sqlite.
func (r *transactionRepo) salesQuery(startDate, endDate time.Time, groupBy string) *gorm.DB {
	var bucket string
	query := r.db.Model(&model.Transaction{})

	switch groupBy {
	case "category":
		bucket = "products.category"
		query = query.Joins("JOIN products ON products.product_id = transactions.product_id")
	case "product":
		bucket = "transactions.product_id"
	default:
		bucket = "substr(cast(transactions.created_at as text), 1, 7)"
	}

	return query.
		Select(bucket + " as bucket, COUNT(*) as transaction_count, COALESCE(SUM(transactions.quantity), 0) as units_sold, COALESCE(SUM(transactions.total_amount), 0) as revenue").
		Where("transactions.type = ? AND transactions.created_at BETWEEN ? AND ?", model.TxSale, startDate, endDate).
		Group(bucket)
}

func (r *transactionRepo) SalesAggregation(startDate, endDate time.Time, groupBy string, offset, limit int) ([]SalesAggregationRow, int64, error) {
	countQuery := r.salesQuery(startDate, endDate, groupBy)
	var total int64
	if err := r.db.Table("(?) as sales", countQuery).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.salesQuery(startDate, endDate, groupBy)
	var rows []SalesAggregationRow
	err := query.Order("bucket ASC").Offset(offset).Limit(limit).Scan(&rows).Error
	return rows, total, err
}

func (r *transactionRepo) TopProducts(startDate, endDate time.Time, limit int) ([]TopProductRow, error) {
	var rows []TopProductRow
	err := r.db.Model(&model.Transaction{}).
		Select("transactions.product_id, products.name, COALESCE(SUM(transactions.quantity), 0) as units_sold, COALESCE(SUM(transactions.total_amount), 0) as revenue").
		Joins("JOIN products ON products.product_id = transactions.product_id").
		Where("transactions.type = ? AND transactions.created_at BETWEEN ? AND ?", model.TxSale, startDate, endDate).
		Group("transactions.product_id, products.name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
