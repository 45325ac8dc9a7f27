package models

import (
	"time"
)

// Order confirmation states. Pending is the initial state; confirmed and
// discarded are terminal.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderDiscarded = "discarded"
)

type Order struct {
	OrderID   int64     `json:"order_id" gorm:"primaryKey;autoIncrement:false"`
	BookID    int64     `json:"book_id" gorm:"not null;index"`
	BuyerID   int64     `json:"buyer_id" gorm:"not null;index"`
	SellerID  int64     `json:"seller_id" gorm:"not null;index"`
	Status    string    `json:"status" gorm:"not null;default:pending"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderWithBook is the listing shape for buyer/seller order history.
type OrderWithBook struct {
	Order
	Book *Book `json:"book,omitempty"`
}
