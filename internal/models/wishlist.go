package models

import (
	"time"
)

type WishlistItem struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_book"`
	BookID    int64     `json:"book_id" gorm:"not null;index;uniqueIndex:idx_user_book"`
	CreatedAt time.Time `json:"created_at"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}

// WishlistEntry is the listing shape with the book attached.
type WishlistEntry struct {
	WishlistItem
	Book *Book `json:"book,omitempty"`
}
