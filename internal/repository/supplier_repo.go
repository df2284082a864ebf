package repository

import (
	"go-stocktrack/internal/model"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	FindBySupplierID(supplierID string) (*model.Supplier, error)
	FindAll() ([]model.Supplier, error)
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepo) FindBySupplierID(supplierID string) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.First(&supplier, "supplier_id = ?", supplierID).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepo) FindAll() ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.Order("supplier_id ASC").Find(&suppliers).Error
	return suppliers, err
}
