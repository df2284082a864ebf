package model

type TransactionType string

const (
	TxSale       TransactionType = "sale"
	TxPurchase   TransactionType = "purchase"
	TxRestock    TransactionType = "restock"
	TxReturn     TransactionType = "return"
	TxAdjustment TransactionType = "adjustment"
)

// Transaction is the append-only ledger of stock-affecting events. Rows are
// never updated or deleted; corrections are recorded as new return or
// adjustment rows.
type Transaction struct {
	BaseModel
	TransactionID string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"transactionId" validate:"required"`
	ProductID     string          `gorm:"type:varchar(50);index;not null" json:"productId" validate:"required"`
	CustomerID    *string         `gorm:"type:varchar(50);index" json:"customerId,omitempty"`
	SupplierID    *string         `gorm:"type:varchar(50);index" json:"supplierId,omitempty"`
	Type          TransactionType `gorm:"type:varchar(20);not null" json:"type" validate:"required,oneof=sale purchase restock return adjustment"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	UnitPrice     int64           `gorm:"not null" json:"unitPrice"`
	TotalAmount   int64           `gorm:"not null" json:"totalAmount"`
	Discount      int64           `gorm:"not null;default:0" json:"discount"`
	Notes         string          `json:"notes,omitempty"`

	Product *Product `gorm:"foreignKey:ProductID;references:ProductID;constraint:OnDelete:RESTRICT" json:"product,omitempty" validate:"-"`
}
