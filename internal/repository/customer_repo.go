package repository

import (
	"go-stocktrack/internal/model"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	FindByCustomerID(customerID string) (*model.Customer, error)
	FindAll() ([]model.Customer, error)
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) Create(customer *model.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepo) FindByCustomerID(customerID string) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.First(&customer, "customer_id = ?", customerID).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) FindAll() ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.Order("customer_id ASC").Find(&customers).Error
	return customers, err
}
