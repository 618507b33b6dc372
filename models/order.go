package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// UserOrderNumber is the per-user sequential number shown to the customer.
	// The composite unique index makes a duplicate assignment impossible.
	UserID          string          `gorm:"not null;uniqueIndex:idx_user_order_number" json:"user_id"`
	UserOrderNumber int             `gorm:"not null;uniqueIndex:idx_user_order_number" json:"user_order_number"`
	TotalAmount     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_amount"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index" json:"order_id"`
	ProductID uint            `json:"product_id"`
	Product   Product         `json:"product"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"` // snapshot at placement
}

func (i OrderItem) TotalPrice() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
