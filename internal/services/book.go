package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bookswap/bookswap-backend/internal/models"
	"github.com/bookswap/bookswap-backend/internal/utils"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 40
	MaxPageSize     = 100
)

// BookService is the listing catalog: CRUD with ownership enforcement plus
// the public browse/filter/search queries. Transacted books are excluded
// from every public listing.
type BookService struct {
	db  *gorm.DB
	seq *SequenceService
}

func NewBookService(db *gorm.DB, seq *SequenceService) *BookService {
	return &BookService{db: db, seq: seq}
}

type CreateBookRequest struct {
	Title         string   `json:"title" form:"title" binding:"required"`
	Author        string   `json:"author" form:"author"`
	Genre         string   `json:"genre" form:"genre"`
	Description   string   `json:"description" form:"description"`
	BookCondition string   `json:"book_condition" form:"book_condition" binding:"required"`
	BookType      string   `json:"book_type" form:"book_type"`
	Price         *float64 `json:"price" form:"price"`
	BookImgURL    string   `json:"book_img_url" form:"book_img_url"`
}

type UpdateBookRequest struct {
	Title         *string  `json:"title,omitempty"`
	Author        *string  `json:"author,omitempty"`
	Genre         *string  `json:"genre,omitempty"`
	Description   *string  `json:"description,omitempty"`
	BookCondition *string  `json:"book_condition,omitempty"`
	BookType      *string  `json:"book_type,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	BookImgURL    *string  `json:"book_img_url,omitempty"`
}

type BookFilter struct {
	Genre    string `form:"genre"`
	BookType string `form:"book_type"`
	Sort     string `form:"sort"`
}

// Create registers a new listing owned by userID.
func (s *BookService) Create(ctx context.Context, userID int64, req CreateBookRequest) (*models.Book, error) {
	title := utils.SanitizeString(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if !utils.IsValidCondition(req.BookCondition) {
		return nil, fmt.Errorf("%w: book condition must be new or used", ErrValidation)
	}

	bookID, err := s.seq.Next(ctx, SeqBook)
	if err != nil {
		return nil, err
	}

	book := models.Book{
		BookID:        bookID,
		Title:         title,
		Author:        utils.SanitizeString(req.Author),
		Genre:         req.Genre,
		Description:   req.Description,
		BookCondition: req.BookCondition,
		Price:         req.Price,
		UserID:        userID,
		BookImgURL:    req.BookImgURL,
	}
	book.SetListingType(req.BookType)

	if err := s.db.WithContext(ctx).Create(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// Update patches a listing. Only the owner may update.
func (s *BookService) Update(ctx context.Context, userID, bookID int64, patch UpdateBookRequest) (*models.Book, error) {
	var book models.Book
	if err := s.db.WithContext(ctx).Where("book_id = ?", bookID).First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: book %d", ErrNotFound, bookID)
		}
		return nil, err
	}
	if book.UserID != userID {
		return nil, fmt.Errorf("%w: not the owner of this book", ErrForbidden)
	}

	if patch.Title != nil && utils.SanitizeString(*patch.Title) != "" {
		book.Title = utils.SanitizeString(*patch.Title)
	}
	if patch.Author != nil {
		book.Author = utils.SanitizeString(*patch.Author)
	}
	if patch.Genre != nil {
		book.Genre = *patch.Genre
	}
	if patch.Description != nil {
		book.Description = *patch.Description
	}
	if patch.BookCondition != nil {
		if !utils.IsValidCondition(*patch.BookCondition) {
			return nil, fmt.Errorf("%w: book condition must be new or used", ErrValidation)
		}
		book.BookCondition = *patch.BookCondition
	}
	if patch.BookImgURL != nil {
		book.BookImgURL = *patch.BookImgURL
	}
	if patch.BookType != nil {
		book.SetListingType(*patch.BookType)
	}
	if patch.Price != nil {
		book.Price = patch.Price
	}

	if err := s.db.WithContext(ctx).Save(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// Delete removes a listing. Only the owner may delete.
func (s *BookService) Delete(ctx context.Context, userID, bookID int64) error {
	var book models.Book
	if err := s.db.WithContext(ctx).Where("book_id = ?", bookID).First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: book %d", ErrNotFound, bookID)
		}
		return err
	}
	if book.UserID != userID {
		return fmt.Errorf("%w: not the owner of this book", ErrForbidden)
	}
	return s.db.WithContext(ctx).Delete(&book).Error
}

// Get returns a single listing with the owner's username attached.
func (s *BookService) Get(ctx context.Context, bookID int64) (*models.BookWithOwner, error) {
	var book models.Book
	if err := s.db.WithContext(ctx).Where("book_id = ?", bookID).First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: book %d", ErrNotFound, bookID)
		}
		return nil, err
	}

	result := models.BookWithOwner{Book: book}
	var owner models.User
	if err := s.db.WithContext(ctx).Where("user_id = ?", book.UserID).First(&owner).Error; err == nil {
		result.OwnerUsername = owner.Username
	}
	return &result, nil
}

// List returns non-transacted listings, newest first, paginated.
func (s *BookService) List(ctx context.Context, page, limit int) ([]models.BookWithOwner, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	var books []models.Book
	err := s.db.WithContext(ctx).
		Where("transacted = ?", false).
		Order("book_id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&books).Error
	if err != nil {
		return nil, err
	}
	return s.attachOwners(ctx, books)
}

// Filter returns non-transacted listings narrowed by genre and listing
// type, in the requested sort order.
func (s *BookService) Filter(ctx context.Context, filter BookFilter) ([]models.Book, error) {
	query := s.db.WithContext(ctx).Model(&models.Book{}).Where("transacted = ?", false)

	if filter.Genre != "" && filter.Genre != "All" {
		query = query.Where("genre = ?", filter.Genre)
	}

	switch filter.BookType {
	case models.ListingSale:
		query = query.Where("is_for_sale = ?", true)
	case models.ListingLoan:
		query = query.Where("is_for_loan = ?", true)
	case models.ListingGiveaway:
		query = query.Where("is_for_giveaway = ?", true)
	}

	switch filter.Sort {
	case "A to Z":
		query = query.Order("title ASC")
	case "Z to A":
		query = query.Order("title DESC")
	case "Price High to Low":
		query = query.Order("price DESC")
	case "Price Low to High":
		query = query.Order("price ASC")
	default:
		query = query.Order("book_id DESC")
	}

	var books []models.Book
	if err := query.Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// Search matches non-transacted listings by title, case-insensitively. An
// empty query returns an empty result rather than everything.
func (s *BookService) Search(ctx context.Context, searchQuery string) ([]models.Book, error) {
	searchQuery = strings.TrimSpace(searchQuery)
	if searchQuery == "" {
		return []models.Book{}, nil
	}

	var books []models.Book
	err := s.db.WithContext(ctx).
		Where("transacted = ? AND LOWER(title) LIKE ?", false, "%"+strings.ToLower(searchQuery)+"%").
		Order("book_id DESC").
		Find(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}

// UserBooks returns every listing owned by a user, including transacted
// ones, newest first.
func (s *BookService) UserBooks(ctx context.Context, userID int64) ([]models.BookWithOwner, error) {
	var books []models.Book
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("book_id DESC").
		Find(&books).Error
	if err != nil {
		return nil, err
	}
	return s.attachOwners(ctx, books)
}

// UploaderProfile resolves a book to its owner's public profile.
func (s *BookService) UploaderProfile(ctx context.Context, bookID int64) (*models.PublicUser, error) {
	var book models.Book
	if err := s.db.WithContext(ctx).Where("book_id = ?", bookID).First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: book %d", ErrNotFound, bookID)
		}
		return nil, err
	}

	var owner models.User
	if err := s.db.WithContext(ctx).Where("user_id = ?", book.UserID).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, book.UserID)
		}
		return nil, err
	}

	public := owner.Public()
	return &public, nil
}

func (s *BookService) attachOwners(ctx context.Context, books []models.Book) ([]models.BookWithOwner, error) {
	result := make([]models.BookWithOwner, 0, len(books))
	if len(books) == 0 {
		return result, nil
	}

	ownerIDs := make([]int64, 0, len(books))
	for _, book := range books {
		ownerIDs = append(ownerIDs, book.UserID)
	}

	var users []models.User
	if err := s.db.WithContext(ctx).Where("user_id IN ?", ownerIDs).Find(&users).Error; err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(users))
	for _, user := range users {
		names[user.UserID] = user.Username
	}

	for _, book := range books {
		result = append(result, models.BookWithOwner{
			Book:          book,
			OwnerUsername: names[book.UserID],
		})
	}
	return result, nil
}
