package model

type Customer struct {
	BaseModel
	CustomerID   string `gorm:"type:varchar(50);uniqueIndex;not null" json:"customerId" validate:"required"`
	Name         string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email        string `gorm:"type:varchar(255)" json:"email,omitempty" validate:"omitempty,email"`
	Phone        string `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	CustomerType string `gorm:"type:varchar(50)" json:"customerType,omitempty"`
}
