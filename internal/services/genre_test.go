package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bookswap/bookswap-backend/internal/services"
)

func newGenreService(t *testing.T) *services.GenreService {
	t.Helper()
	db := newTestDB(t)
	return services.NewGenreService(db, services.NewSequenceService(db))
}

func TestGenreCreate(t *testing.T) {
	genres := newGenreService(t)
	ctx := context.Background()

	genre, err := genres.Create(ctx, "  Science Fiction  ")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if genre.Name != "Science Fiction" {
		t.Errorf("name = %q; want trimmed name", genre.Name)
	}
	if genre.GenreID == 0 {
		t.Error("genre id not assigned")
	}
}

func TestGenreCreate_Validation(t *testing.T) {
	genres := newGenreService(t)
	ctx := context.Background()

	if _, err := genres.Create(ctx, "   "); !errors.Is(err, services.ErrValidation) {
		t.Errorf("blank name err = %v; want ErrValidation", err)
	}
	if _, err := genres.Create(ctx, strings.Repeat("x", 61)); !errors.Is(err, services.ErrValidation) {
		t.Errorf("61 chars err = %v; want ErrValidation", err)
	}
}

func TestGenreCreate_Duplicate(t *testing.T) {
	genres := newGenreService(t)
	ctx := context.Background()

	if _, err := genres.Create(ctx, "Fantasy"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := genres.Create(ctx, "Fantasy"); !errors.Is(err, services.ErrConflict) {
		t.Fatalf("duplicate err = %v; want ErrConflict", err)
	}
}

func TestGenreAll_SortedByName(t *testing.T) {
	genres := newGenreService(t)
	ctx := context.Background()

	for _, name := range []string{"Mystery", "Biography", "Thriller"} {
		if _, err := genres.Create(ctx, name); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	all, err := genres.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d; want 3", len(all))
	}
	want := []string{"Biography", "Mystery", "Thriller"}
	for i, genre := range all {
		if genre.Name != want[i] {
			t.Errorf("genre[%d] = %q; want %q", i, genre.Name, want[i])
		}
	}
}
