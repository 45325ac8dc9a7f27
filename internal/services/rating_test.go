package services_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/bookswap/bookswap-backend/internal/models"
	"github.com/bookswap/bookswap-backend/internal/services"
	"gorm.io/gorm"
)

// linkUsers places an order from buyer to the owner of a fresh book so the
// two users gain a transaction link.
func linkUsers(t *testing.T, db *gorm.DB, orders *services.OrderService, bookID, sellerID, buyerID int64) *models.Order {
	t.Helper()
	createBook(t, db, bookID, sellerID)
	order, err := orders.PlaceOrder(context.Background(), buyerID, bookID)
	if err != nil {
		t.Fatalf("place linking order: %v", err)
	}
	return order
}

func newRatingService(t *testing.T) (*services.RatingService, *services.OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	seq := services.NewSequenceService(db)
	orders := services.NewOrderService(db, seq, nil)
	return services.NewRatingService(db, seq, orders, nil), orders, db
}

func TestSubmitRating_OutOfBounds(t *testing.T) {
	ratings, _, db := newRatingService(t)
	createUser(t, db, 1)
	createUser(t, db, 2)

	for _, value := range []float64{-1, 10.5, math.NaN(), math.Inf(1)} {
		if _, err := ratings.SubmitRating(context.Background(), 2, 1, value); !errors.Is(err, services.ErrValidation) {
			t.Errorf("value %v: err = %v; want ErrValidation", value, err)
		}
	}
}

func TestSubmitRating_Self(t *testing.T) {
	ratings, _, db := newRatingService(t)
	createUser(t, db, 1)

	if _, err := ratings.SubmitRating(context.Background(), 1, 1, 5); !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("err = %v; want ErrForbidden", err)
	}
}

func TestSubmitRating_NoTransactionLink(t *testing.T) {
	ratings, _, db := newRatingService(t)
	createUser(t, db, 1)
	createUser(t, db, 2)

	if _, err := ratings.SubmitRating(context.Background(), 2, 1, 5); !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("err = %v; want ErrForbidden", err)
	}
}

func TestSubmitRating_PendingOrderQualifies(t *testing.T) {
	ratings, orders, db := newRatingService(t)
	createUser(t, db, 1)
	createUser(t, db, 2)
	linkUsers(t, db, orders, 1, 1, 2)

	rating, err := ratings.SubmitRating(context.Background(), 2, 1, 9)
	if err != nil {
		t.Fatalf("SubmitRating with pending order: %v", err)
	}
	if rating.Rating != 9 {
		t.Errorf("rating = %v; want 9", rating.Rating)
	}
}

func TestSubmitRating_DiscardedOrderStillQualifies(t *testing.T) {
	ratings, orders, db := newRatingService(t)
	createUser(t, db, 1)
	createUser(t, db, 2)
	ctx := context.Background()

	order := linkUsers(t, db, orders, 1, 1, 2)
	if err := orders.DiscardOrder(ctx, 1, order.OrderID); err != nil {
		t.Fatalf("DiscardOrder: %v", err)
	}

	if _, err := ratings.SubmitRating(ctx, 2, 1, 3); err != nil {
		t.Fatalf("SubmitRating after discard: %v", err)
	}
}

func TestSubmitRating_SellerCanRateBuyer(t *testing.T) {
	ratings, orders, db := newRatingService(t)
	createUser(t, db, 1)
	createUser(t, db, 2)
	linkUsers(t, db, orders, 1, 1, 2)

	if _, err := ratings.SubmitRating(context.Background(), 1, 2, 7); err != nil {
		t.Fatalf("seller rating buyer: %v", err)
	}
}

func TestSubmitRating_UpsertByPair(t *testing.T) {
	ratings, orders, db := newRatingService(t)
	createUser(t, db, 1)
	createUser(t, db, 2)
	linkUsers(t, db, orders, 1, 1, 2)
	ctx := context.Background()

	first, err := ratings.SubmitRating(ctx, 2, 1, 4)
	if err != nil {
		t.Fatalf("first SubmitRating: %v", err)
	}
	second, err := ratings.SubmitRating(ctx, 2, 1, 8)
	if err != nil {
		t.Fatalf("second SubmitRating: %v", err)
	}
	if first.RatingID != second.RatingID {
		t.Errorf("resubmission created a new rating: %d vs %d", first.RatingID, second.RatingID)
	}
	if second.Rating != 8 {
		t.Errorf("rating = %v; want 8", second.Rating)
	}

	var count int64
	db.Model(&models.Rating{}).Where("recipient_id = ?", 1).Count(&count)
	if count != 1 {
		t.Errorf("rating count = %d; want 1", count)
	}
}

func TestStats_NoRatings(t *testing.T) {
	ratings, _, db := newRatingService(t)
	createUser(t, db, 1)

	stats, err := ratings.Stats(context.Background(), 1)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.RatingCount != 0 {
		t.Errorf("count = %d; want 0", stats.RatingCount)
	}
	if stats.AverageRating != 0 {
		t.Errorf("average = %v; want 0 exactly", stats.AverageRating)
	}
}

func TestStats_Average(t *testing.T) {
	ratings, orders, db := newRatingService(t)
	createUser(t, db, 1)
	createUser(t, db, 2)
	createUser(t, db, 3)
	ctx := context.Background()

	linkUsers(t, db, orders, 1, 1, 2)
	linkUsers(t, db, orders, 2, 1, 3)

	if _, err := ratings.SubmitRating(ctx, 2, 1, 4); err != nil {
		t.Fatalf("SubmitRating: %v", err)
	}
	if _, err := ratings.SubmitRating(ctx, 3, 1, 9); err != nil {
		t.Fatalf("SubmitRating: %v", err)
	}

	stats, err := ratings.Stats(ctx, 1)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.RatingCount != 2 {
		t.Errorf("count = %d; want 2", stats.RatingCount)
	}
	if math.Abs(stats.AverageRating-6.5) > 1e-9 {
		t.Errorf("average = %v; want 6.5", stats.AverageRating)
	}
}
