package model

type Supplier struct {
	BaseModel
	SupplierID    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"supplierId" validate:"required"`
	Name          string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	ContactPerson string `gorm:"type:varchar(255)" json:"contactPerson,omitempty"`
	Email         string `gorm:"type:varchar(255)" json:"email,omitempty" validate:"omitempty,email"`
	Phone         string `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	Category      string `gorm:"type:varchar(100)" json:"category,omitempty"`
}
