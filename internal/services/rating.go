package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookswap/bookswap-backend/internal/cache"
	"github.com/bookswap/bookswap-backend/internal/models"
	"github.com/bookswap/bookswap-backend/internal/utils"
	"gorm.io/gorm"
)

// TrustChecker gates ratings and reviews to user pairs with a prior order
// between them. Implemented by OrderService.
type TrustChecker interface {
	HasTransactionLink(ctx context.Context, userA, userB int64) (bool, error)
}

type RatingService struct {
	db    *gorm.DB
	seq   *SequenceService
	trust TrustChecker
	stats *cache.StatsCache
}

func NewRatingService(db *gorm.DB, seq *SequenceService, trust TrustChecker, stats *cache.StatsCache) *RatingService {
	return &RatingService{db: db, seq: seq, trust: trust, stats: stats}
}

// SubmitRating records a rating from rater to recipient, overwriting any
// previous rating for the same pair.
func (s *RatingService) SubmitRating(ctx context.Context, raterID, recipientID int64, value float64) (*models.Rating, error) {
	if !utils.IsValidRating(value) {
		return nil, fmt.Errorf("%w: rating must be between 0 and 10", ErrValidation)
	}
	if raterID == recipientID {
		return nil, fmt.Errorf("%w: cannot rate yourself", ErrForbidden)
	}

	linked, err := s.trust.HasTransactionLink(ctx, raterID, recipientID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, fmt.Errorf("%w: no direct connection for rating", ErrForbidden)
	}

	var existing models.Rating
	err = s.db.WithContext(ctx).
		Where("rater_id = ? AND recipient_id = ?", raterID, recipientID).
		First(&existing).Error
	if err == nil {
		existing.Rating = value
		if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return nil, err
		}
		s.stats.Invalidate(ctx, recipientID)
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ratingID, err := s.seq.Next(ctx, SeqRating)
	if err != nil {
		return nil, err
	}

	rating := models.Rating{
		RatingID:    ratingID,
		RaterID:     raterID,
		RecipientID: recipientID,
		Rating:      value,
	}
	if err := s.db.WithContext(ctx).Create(&rating).Error; err != nil {
		return nil, err
	}
	s.stats.Invalidate(ctx, recipientID)
	return &rating, nil
}

// Stats returns the count and arithmetic mean of all ratings received by a
// user. A user with no ratings gets {count: 0, average: 0}.
func (s *RatingService) Stats(ctx context.Context, recipientID int64) (*models.RatingStats, error) {
	if cached, ok := s.stats.Get(ctx, recipientID); ok {
		return cached, nil
	}

	var result models.RatingStats
	err := s.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS rating_count, COALESCE(AVG(rating), 0) AS average_rating
		FROM ratings WHERE recipient_id = ?`, recipientID).Scan(&result).Error
	if err != nil {
		return nil, err
	}

	s.stats.Set(ctx, recipientID, &result)
	return &result, nil
}
