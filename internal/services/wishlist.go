package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookswap/bookswap-backend/internal/models"
	"gorm.io/gorm"
)

type WishlistService struct {
	db *gorm.DB
}

func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{db: db}
}

// Toggle adds the book to the user's wishlist, or removes it if already
// present. Returns whether the book is wished after the call.
func (s *WishlistService) Toggle(ctx context.Context, userID, bookID int64) (bool, error) {
	var book models.Book
	if err := s.db.WithContext(ctx).Where("book_id = ?", bookID).First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("%w: book %d", ErrNotFound, bookID)
		}
		return false, err
	}

	var existing models.WishlistItem
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&existing).Error
	if err == nil {
		if err := s.db.WithContext(ctx).Delete(&existing).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	item := models.WishlistItem{UserID: userID, BookID: bookID}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return false, err
	}
	return true, nil
}

// List returns the user's wishlist, newest first, with books attached.
func (s *WishlistService) List(ctx context.Context, userID int64) ([]models.WishlistEntry, error) {
	var items []models.WishlistItem
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	result := make([]models.WishlistEntry, 0, len(items))
	if len(items) == 0 {
		return result, nil
	}

	bookIDs := make([]int64, 0, len(items))
	for _, item := range items {
		bookIDs = append(bookIDs, item.BookID)
	}

	var books []models.Book
	if err := s.db.WithContext(ctx).Where("book_id IN ?", bookIDs).Find(&books).Error; err != nil {
		return nil, err
	}
	byID := make(map[int64]models.Book, len(books))
	for _, book := range books {
		byID[book.BookID] = book
	}

	for _, item := range items {
		entry := models.WishlistEntry{WishlistItem: item}
		if book, ok := byID[item.BookID]; ok {
			b := book
			entry.Book = &b
		}
		result = append(result, entry)
	}
	return result, nil
}
