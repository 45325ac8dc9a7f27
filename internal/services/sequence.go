package services

import (
	"context"

	"gorm.io/gorm"
)

// SequenceService hands out monotonically increasing ids, one counter per
// entity name. The counter row is created on first use.
type SequenceService struct {
	db *gorm.DB
}

func NewSequenceService(db *gorm.DB) *SequenceService {
	return &SequenceService{db: db}
}

// Counter names used across the services.
const (
	SeqUser   = "user_id"
	SeqBook   = "book_id"
	SeqOrder  = "order_id"
	SeqRating = "rating_id"
	SeqReview = "review_id"
	SeqGenre  = "genre_id"
)

// Next increments and returns the counter in a single statement, so two
// concurrent callers can never observe the same value.
func (s *SequenceService) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO sequences (name, value) VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
		RETURNING value`, name).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}
