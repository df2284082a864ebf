package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"go-stocktrack/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Product{},
		&model.Customer{},
		&model.Supplier{},
		&model.Transaction{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, productID, category string, price int64, stock int) {
	t.Helper()
	require.NoError(t, db.Create(&model.Product{
		ProductID: productID,
		Name:      "Product " + productID,
		Price:     price,
		Stock:     stock,
		Category:  category,
	}).Error)
}

func seedSale(t *testing.T, db *gorm.DB, transactionID, productID string, quantity int, total int64, createdAt time.Time) {
	t.Helper()
	seedTx(t, db, transactionID, productID, model.TxSale, quantity, total, createdAt)
}

func seedTx(t *testing.T, db *gorm.DB, transactionID, productID string, txType model.TransactionType, quantity int, total int64, createdAt time.Time) {
	t.Helper()
	tx := model.Transaction{
		TransactionID: transactionID,
		ProductID:     productID,
		Type:          txType,
		Quantity:      quantity,
		UnitPrice:     total / int64(quantity),
		TotalAmount:   total,
	}
	tx.CreatedAt = createdAt
	require.NoError(t, db.Create(&tx).Error)
}

func TestApplyStockDeltaGuard(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "P1", "X", 100, 5)
	repo := NewProductRepo(db)

	applied, err := repo.ApplyStockDelta(db, "P1", -3)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = repo.ApplyStockDelta(db, "P1", -3)
	require.NoError(t, err)
	assert.False(t, applied, "delta below zero must match no rows")

	product, err := repo.FindByProductID("P1")
	require.NoError(t, err)
	assert.Equal(t, 2, product.Stock)

	applied, err = repo.ApplyStockDelta(db, "missing", 1)
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestListProductsByCategoryPaginated(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "P1", "X", 100, 5)
	seedProduct(t, db, "P2", "X", 200, 5)
	seedProduct(t, db, "P3", "Y", 300, 5)
	repo := NewProductRepo(db)

	products, total, err := repo.List("X", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, products, 1)
	assert.Equal(t, "P1", products[0].ProductID)

	products, total, err = repo.List("", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, products, 3)
}

func TestInventoryValuation(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "P1", "X", 100, 5)
	seedProduct(t, db, "P2", "Y", 200, 3)
	repo := NewTransactionRepo(db)

	valuation, err := repo.InventoryValuation()
	require.NoError(t, err)
	assert.Equal(t, int64(100*5+200*3), valuation.TotalValue)
	assert.Equal(t, int64(2), valuation.ProductCount)
	assert.Equal(t, int64(8), valuation.UnitCount)
}

func TestFindLowStock(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "P1", "X", 100, 2)
	seedProduct(t, db, "P2", "X", 100, 10)
	seedProduct(t, db, "P3", "X", 100, 11)
	repo := NewProductRepo(db)

	products, err := repo.FindLowStock(10)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "P1", products[0].ProductID)
	assert.Equal(t, "P2", products[1].ProductID)
}

func TestSalesAggregationByMonth(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "P1", "X", 100, 50)
	repo := NewTransactionRepo(db)

	jan := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC)
	seedSale(t, db, "T1", "P1", 2, 200, jan)
	seedSale(t, db, "T2", "P1", 3, 300, jan.Add(24*time.Hour))
	seedSale(t, db, "T3", "P1", 1, 100, feb)
	// Purchases are not sales; they must not appear in the report.
	seedTx(t, db, "T4", "P1", model.TxPurchase, 10, 1000, jan)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	rows, total, err := repo.SalesAggregation(start, end, "month", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, rows, 2)

	assert.Equal(t, "2026-01", rows[0].Bucket)
	assert.Equal(t, int64(2), rows[0].TransactionCount)
	assert.Equal(t, int64(5), rows[0].UnitsSold)
	assert.Equal(t, int64(500), rows[0].Revenue)

	assert.Equal(t, "2026-02", rows[1].Bucket)
	assert.Equal(t, int64(100), rows[1].Revenue)
}

func TestSalesAggregationByCategoryAndProduct(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "P1", "X", 100, 50)
	seedProduct(t, db, "P2", "Y", 200, 50)
	repo := NewTransactionRepo(db)

	when := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	seedSale(t, db, "T1", "P1", 2, 200, when)
	seedSale(t, db, "T2", "P2", 1, 200, when)
	seedSale(t, db, "T3", "P2", 2, 400, when)

	start := when.AddDate(0, 0, -1)
	end := when.AddDate(0, 0, 1)

	rows, total, err := repo.SalesAggregation(start, end, "category", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, rows, 2)
	assert.Equal(t, "X", rows[0].Bucket)
	assert.Equal(t, int64(200), rows[0].Revenue)
	assert.Equal(t, "Y", rows[1].Bucket)
	assert.Equal(t, int64(600), rows[1].Revenue)

	rows, total, err = repo.SalesAggregation(start, end, "product", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "P1", rows[0].Bucket)
	assert.Equal(t, "P2", rows[1].Bucket)
	assert.Equal(t, int64(3), rows[1].UnitsSold)
}

func TestSalesAggregationPagination(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "P1", "X", 100, 50)
	seedProduct(t, db, "P2", "Y", 100, 50)
	seedProduct(t, db, "P3", "Z", 100, 50)
	repo := NewTransactionRepo(db)

	when := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	seedSale(t, db, "T1", "P1", 1, 100, when)
	seedSale(t, db, "T2", "P2", 1, 100, when)
	seedSale(t, db, "T3", "P3", 1, 100, when)

	rows, total, err := repo.SalesAggregation(when.AddDate(0, 0, -1), when.AddDate(0, 0, 1), "product", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "P2", rows[0].Bucket)
}

func TestTopProductsByRevenue(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "P1", "X", 100, 50)
	seedProduct(t, db, "P2", "Y", 500, 50)
	seedProduct(t, db, "P3", "Z", 50, 50)
	repo := NewTransactionRepo(db)

	when := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	seedSale(t, db, "T1", "P1", 3, 300, when)
	seedSale(t, db, "T2", "P2", 2, 1000, when)
	seedSale(t, db, "T3", "P3", 4, 200, when)

	rows, err := repo.TopProducts(when.AddDate(0, 0, -1), when.AddDate(0, 0, 1), 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "P2", rows[0].ProductID)
	assert.Equal(t, int64(1000), rows[0].Revenue)
	assert.Equal(t, "P1", rows[1].ProductID)
}

func TestHistoryByProductNewestFirst(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "P1", "X", 100, 50)
	seedProduct(t, db, "P2", "X", 100, 50)
	repo := NewTransactionRepo(db)

	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedSale(t, db, fmt.Sprintf("T%d", i), "P1", 1, 100, base.Add(time.Duration(i)*time.Hour))
	}
	seedSale(t, db, "other", "P2", 1, 100, base)

	transactions, total, err := repo.HistoryByProduct("P1", 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, transactions, 2)
	assert.Equal(t, "T4", transactions[0].TransactionID)
	assert.Equal(t, "T3", transactions[1].TransactionID)

	transactions, _, err = repo.HistoryByProduct("P1", 4, 2)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "T0", transactions[0].TransactionID)
}

func TestDuplicateTransactionIDRejectedByIndex(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "P1", "X", 100, 50)

	when := time.Now().UTC()
	seedSale(t, db, "T1", "P1", 1, 100, when)

	dup := model.Transaction{
		TransactionID: "T1",
		ProductID:     "P1",
		Type:          model.TxSale,
		Quantity:      1,
		UnitPrice:     100,
		TotalAmount:   100,
	}
	assert.Error(t, db.Create(&dup).Error, "unique index must backstop the duplicate check")
}
