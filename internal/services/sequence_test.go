package services_test

import (
	"context"
	"testing"

	"github.com/bookswap/bookswap-backend/internal/services"
)

func TestSequenceNext_StartsAtOne(t *testing.T) {
	seq := services.NewSequenceService(newTestDB(t))

	value, err := seq.Next(context.Background(), services.SeqBook)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if value != 1 {
		t.Fatalf("first value = %d; want 1", value)
	}
}

func TestSequenceNext_MonotonicNoDuplicates(t *testing.T) {
	seq := services.NewSequenceService(newTestDB(t))

	seen := make(map[int64]bool)
	var last int64
	for i := 0; i < 20; i++ {
		value, err := seq.Next(context.Background(), services.SeqOrder)
		if err != nil {
			t.Fatalf("Next #%d: %v", i, err)
		}
		if seen[value] {
			t.Fatalf("duplicate value %d", value)
		}
		if value <= last {
			t.Fatalf("value %d not greater than previous %d", value, last)
		}
		seen[value] = true
		last = value
	}
}

func TestSequenceNext_IndependentCounters(t *testing.T) {
	seq := services.NewSequenceService(newTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := seq.Next(ctx, services.SeqBook); err != nil {
			t.Fatalf("Next book: %v", err)
		}
	}

	value, err := seq.Next(ctx, services.SeqUser)
	if err != nil {
		t.Fatalf("Next user: %v", err)
	}
	if value != 1 {
		t.Fatalf("user counter = %d; want 1 (must not share the book counter)", value)
	}
}
