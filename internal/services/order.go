package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookswap/bookswap-backend/internal/models"
	"github.com/bookswap/bookswap-backend/pkg/logger"
	"gorm.io/gorm"
)

// OrderService drives the order state machine: pending -> confirmed or
// pending -> discarded, both terminal. Confirming an order also marks the
// book transacted, which removes it from the public catalog.
type OrderService struct {
	db    *gorm.DB
	seq   *SequenceService
	email *EmailService
}

func NewOrderService(db *gorm.DB, seq *SequenceService, email *EmailService) *OrderService {
	return &OrderService{db: db, seq: seq, email: email}
}

// PlaceOrder creates a pending order for the book on behalf of the buyer.
// Placing the same order twice is a no-op that returns the existing order.
func (s *OrderService) PlaceOrder(ctx context.Context, buyerID, bookID int64) (*models.Order, error) {
	var book models.Book
	if err := s.db.WithContext(ctx).Where("book_id = ?", bookID).First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: book %d", ErrNotFound, bookID)
		}
		return nil, err
	}

	if book.Transacted {
		return nil, fmt.Errorf("%w: book is already transacted", ErrConflict)
	}
	if book.UserID == buyerID {
		return nil, fmt.Errorf("%w: cannot order your own book", ErrForbidden)
	}

	var existing models.Order
	err := s.db.WithContext(ctx).
		Where("book_id = ? AND buyer_id = ?", bookID, buyerID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	orderID, err := s.seq.Next(ctx, SeqOrder)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		OrderID:  orderID,
		BookID:   bookID,
		BuyerID:  buyerID,
		SellerID: book.UserID,
		Status:   models.OrderPending,
	}
	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		return nil, err
	}

	s.notifySeller(order, book)

	return &order, nil
}

// ConfirmOrder moves a pending order to confirmed and marks the book
// transacted. Both writes happen in one transaction.
func (s *OrderService) ConfirmOrder(ctx context.Context, sellerID, orderID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Where("order_id = ?", orderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
			}
			return err
		}
		if order.SellerID != sellerID {
			return fmt.Errorf("%w: only the seller can confirm this order", ErrForbidden)
		}
		if order.Status != models.OrderPending {
			return fmt.Errorf("%w: order is already %s", ErrConflict, order.Status)
		}

		var book models.Book
		if err := tx.Where("book_id = ?", order.BookID).First(&book).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: book %d", ErrNotFound, order.BookID)
			}
			return err
		}
		if book.Transacted {
			return fmt.Errorf("%w: book is already transacted", ErrConflict)
		}

		if err := tx.Model(&order).Update("status", models.OrderConfirmed).Error; err != nil {
			return err
		}
		return tx.Model(&book).Update("transacted", true).Error
	})
}

// DiscardOrder moves a pending order to discarded. The book is untouched.
func (s *OrderService) DiscardOrder(ctx context.Context, sellerID, orderID int64) error {
	var order models.Order
	if err := s.db.WithContext(ctx).Where("order_id = ?", orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return err
	}
	if order.SellerID != sellerID {
		return fmt.Errorf("%w: only the seller can discard this order", ErrForbidden)
	}
	if order.Status != models.OrderPending {
		return fmt.Errorf("%w: order is already %s", ErrConflict, order.Status)
	}

	return s.db.WithContext(ctx).Model(&order).Update("status", models.OrderDiscarded).Error
}

// HasTransactionLink reports whether any order connects the two users as
// buyer and seller, in either direction. Any confirmation state qualifies:
// a placed order, even a later discarded one, is taken as evidence of a
// real-world connection.
func (s *OrderService) HasTransactionLink(ctx context.Context, userA, userB int64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("(buyer_id = ? AND seller_id = ?) OR (buyer_id = ? AND seller_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UserOrders lists the orders placed by a buyer, newest first.
func (s *OrderService) UserOrders(ctx context.Context, buyerID int64) ([]models.OrderWithBook, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("order_id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return s.attachBooks(ctx, orders)
}

// ReceivedOrders lists the orders received by a seller, newest first.
func (s *OrderService) ReceivedOrders(ctx context.Context, sellerID int64) ([]models.OrderWithBook, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("order_id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return s.attachBooks(ctx, orders)
}

func (s *OrderService) attachBooks(ctx context.Context, orders []models.Order) ([]models.OrderWithBook, error) {
	result := make([]models.OrderWithBook, 0, len(orders))
	if len(orders) == 0 {
		return result, nil
	}

	bookIDs := make([]int64, 0, len(orders))
	for _, order := range orders {
		bookIDs = append(bookIDs, order.BookID)
	}

	var books []models.Book
	if err := s.db.WithContext(ctx).Where("book_id IN ?", bookIDs).Find(&books).Error; err != nil {
		return nil, err
	}

	byID := make(map[int64]models.Book, len(books))
	for _, book := range books {
		byID[book.BookID] = book
	}

	for _, order := range orders {
		entry := models.OrderWithBook{Order: order}
		if book, ok := byID[order.BookID]; ok {
			b := book
			entry.Book = &b
		}
		result = append(result, entry)
	}
	return result, nil
}

// notifySeller emails the seller about a new order. Best effort: failures
// are logged and never surfaced to the buyer's request.
func (s *OrderService) notifySeller(order models.Order, book models.Book) {
	if s.email == nil || !s.email.Enabled() {
		return
	}

	go func() {
		var seller, buyer models.User
		if err := s.db.Where("user_id = ?", order.SellerID).First(&seller).Error; err != nil {
			logger.Errorf("order %d: seller lookup for notification failed: %v", order.OrderID, err)
			return
		}
		if err := s.db.Where("user_id = ?", order.BuyerID).First(&buyer).Error; err != nil {
			logger.Errorf("order %d: buyer lookup for notification failed: %v", order.OrderID, err)
			return
		}
		if err := s.email.SendOrderPlacedEmail(seller.Email, seller.Name, buyer.Username, book.Title); err != nil {
			logger.Errorf("order %d: notification email failed: %v", order.OrderID, err)
		}
	}()
}
