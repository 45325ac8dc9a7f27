package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookswap/bookswap-backend/internal/models"
	"github.com/bookswap/bookswap-backend/internal/utils"
	"gorm.io/gorm"
)

type GenreService struct {
	db  *gorm.DB
	seq *SequenceService
}

func NewGenreService(db *gorm.DB, seq *SequenceService) *GenreService {
	return &GenreService{db: db, seq: seq}
}

// Create adds a genre. Names are unique.
func (s *GenreService) Create(ctx context.Context, name string) (*models.Genre, error) {
	name = utils.SanitizeString(name)
	if name == "" || len(name) > 60 {
		return nil, fmt.Errorf("%w: genre name must be between 1 and 60 characters", ErrValidation)
	}

	var existing models.Genre
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: genre already exists", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	genreID, err := s.seq.Next(ctx, SeqGenre)
	if err != nil {
		return nil, err
	}

	genre := models.Genre{GenreID: genreID, Name: name}
	if err := s.db.WithContext(ctx).Create(&genre).Error; err != nil {
		return nil, err
	}
	return &genre, nil
}

// All lists every genre sorted by name.
func (s *GenreService) All(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}
