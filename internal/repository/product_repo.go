package repository

import (
	"errors"

	"go-stocktrack/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindByProductID(productID string) (*model.Product, error)
	FindByProductIDTx(tx *gorm.DB, productID string) (*model.Product, error)
	List(category string, offset, limit int) ([]model.Product, int64, error)
	ApplyStockDelta(tx *gorm.DB, productID string, delta int) (bool, error)
	FindLowStock(threshold int) ([]model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindByProductID(productID string) (*model.Product, error) {
	return r.FindByProductIDTx(r.db, productID)
}

func (r *productRepo) FindByProductIDTx(tx *gorm.DB, productID string) (*model.Product, error) {
	var product model.Product
	if err := tx.First(&product, "product_id = ?", productID).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) List(category string, offset, limit int) ([]model.Product, int64, error) {
	query := r.db.Model(&model.Product{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err := query.Order("product_id ASC").Offset(offset).Limit(limit).Find(&products).Error
	return products, total, err
}

// ApplyStockDelta applies a signed stock change as a single guarded UPDATE.
// The `stock + delta >= 0` predicate makes the read-modify-write atomic per
// row: concurrent decrements serialize on the row and the losing writer
// matches zero rows instead of driving stock negative. Returns false when the
// guard rejected the change.
func (r *productRepo) ApplyStockDelta(tx *gorm.DB, productID string, delta int) (bool, error) {
	res := tx.Model(&model.Product{}).
		Where("product_id = ? AND stock + ? >= 0", productID, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *productRepo) FindLowStock(threshold int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("stock <= ?", threshold).Order("stock ASC").Find(&products).Error
	return products, err
}

// IsNotFound reports whether err is the store's missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
