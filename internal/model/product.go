package model

type Product struct {
	BaseModel
	ProductID   string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"productId" validate:"required"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Price       int64   `gorm:"not null;default:0" json:"price" validate:"min=0"`
	Stock       int     `gorm:"not null;default:0" json:"stock" validate:"min=0"`
	Category    string  `gorm:"type:varchar(100);not null" json:"category" validate:"required"`
	Description string  `json:"description,omitempty"`
	SupplierID  *string `gorm:"type:varchar(50);index" json:"supplierId,omitempty"`

	Transactions []Transaction `gorm:"foreignKey:ProductID;references:ProductID" json:"transactions,omitempty" validate:"-"`
}
