package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/bookswap/bookswap-backend/internal/models"
	"gorm.io/gorm"
)

type ReviewService struct {
	db    *gorm.DB
	seq   *SequenceService
	trust TrustChecker
}

func NewReviewService(db *gorm.DB, seq *SequenceService, trust TrustChecker) *ReviewService {
	return &ReviewService{db: db, seq: seq, trust: trust}
}

// SubmitReview records a review from reviewer to recipient, overwriting any
// previous review for the same pair. The same trust-link gate as ratings
// applies.
func (s *ReviewService) SubmitReview(ctx context.Context, reviewerID, recipientID int64, text string) (*models.Review, error) {
	length := utf8.RuneCountInString(text)
	if length == 0 || length > models.MaxReviewLength {
		return nil, fmt.Errorf("%w: review must be between 1 and %d characters", ErrValidation, models.MaxReviewLength)
	}
	if reviewerID == recipientID {
		return nil, fmt.Errorf("%w: cannot review yourself", ErrForbidden)
	}

	linked, err := s.trust.HasTransactionLink(ctx, reviewerID, recipientID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, fmt.Errorf("%w: no direct connection for review", ErrForbidden)
	}

	var existing models.Review
	err = s.db.WithContext(ctx).
		Where("reviewer_id = ? AND recipient_id = ?", reviewerID, recipientID).
		First(&existing).Error
	if err == nil {
		existing.Review = text
		if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	reviewID, err := s.seq.Next(ctx, SeqReview)
	if err != nil {
		return nil, err
	}

	review := models.Review{
		ReviewID:    reviewID,
		ReviewerID:  reviewerID,
		RecipientID: recipientID,
		Review:      text,
	}
	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// UserReviews lists the reviews received by a user, newest first, with the
// reviewer's username attached.
func (s *ReviewService) UserReviews(ctx context.Context, recipientID int64) ([]models.ReviewWithReviewer, error) {
	var reviews []models.Review
	err := s.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("review_id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	result := make([]models.ReviewWithReviewer, 0, len(reviews))
	if len(reviews) == 0 {
		return result, nil
	}

	reviewerIDs := make([]int64, 0, len(reviews))
	for _, review := range reviews {
		reviewerIDs = append(reviewerIDs, review.ReviewerID)
	}

	var users []models.User
	if err := s.db.WithContext(ctx).Where("user_id IN ?", reviewerIDs).Find(&users).Error; err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(users))
	for _, user := range users {
		names[user.UserID] = user.Username
	}

	for _, review := range reviews {
		result = append(result, models.ReviewWithReviewer{
			Review:           review,
			ReviewerUsername: names[review.ReviewerID],
		})
	}
	return result, nil
}
