package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	gorm.Model
	Subtotal decimal.Decimal `gorm:"type:decimal(16,2)" json:"subtotal"`
	Total    decimal.Decimal `gorm:"type:decimal(16,2)" json:"total"`
	Status   string          `gorm:"not null;default:pending" json:"status"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	OrderItems []OrderItem `json:"items,omitempty"`
}
