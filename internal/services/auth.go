package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookswap/bookswap-backend/internal/models"
	"github.com/bookswap/bookswap-backend/internal/utils"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	seq       *SequenceService
	jwtSecret string
}

func NewAuthService(db *gorm.DB, seq *SequenceService, jwtSecret string) *AuthService {
	return &AuthService{db: db, seq: seq, jwtSecret: jwtSecret}
}

type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	Password    string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string           `json:"token"`
	User  models.PublicUser `json:"user"`
}

type UpdateProfileRequest struct {
	Name            string `json:"name" form:"name"`
	Username        string `json:"username" form:"username"`
	Email           string `json:"email" form:"email"`
	PhoneNumber     string `json:"phone_number" form:"phone_number"`
	Address         string `json:"address" form:"address"`
	Password        string `json:"password" form:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	ProfilePicture  string `json:"-" form:"-"`
}

// ProfileResponse is the authenticated user's profile with their listings.
type ProfileResponse struct {
	models.PublicUser
	Books []models.Book `json:"books"`
}

// Register creates a new account. Emails are unique; passwords are hashed
// by the User BeforeCreate hook.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*models.PublicUser, error) {
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if !utils.IsValidPassword(req.Password) {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: user already exists", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	userID, err := s.seq.Next(ctx, SeqUser)
	if err != nil {
		return nil, err
	}

	user := models.User{
		UserID:      userID,
		Username:    utils.SanitizeString(req.Username),
		Name:        utils.SanitizeString(req.Name),
		Email:       utils.SanitizeString(req.Email),
		PhoneNumber: utils.SanitizeString(req.PhoneNumber),
		Address:     utils.SanitizeString(req.Address),
		Password:    req.Password, // Hashed in BeforeCreate hook
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	public := user.Public()
	return &public, nil
}

// Login verifies credentials and issues a JWT.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", ErrForbidden)
		}
		return nil, err
	}
	if !user.CheckPassword(req.Password) {
		return nil, fmt.Errorf("%w: invalid credentials", ErrForbidden)
	}

	token, err := utils.GenerateToken(user.UserID, user.Email, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: user.Public()}, nil
}

// Profile returns the user's own profile with their listings attached.
func (s *AuthService) Profile(ctx context.Context, userID int64) (*ProfileResponse, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, err
	}

	var books []models.Book
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&books).Error; err != nil {
		return nil, err
	}

	return &ProfileResponse{PublicUser: user.Public(), Books: books}, nil
}

// UpdateProfile patches the user's profile. The current password is
// required for any edit; a non-empty ConfirmPassword changes the password.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) error {
	var user models.User
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return err
	}

	if !user.CheckPassword(req.Password) {
		return fmt.Errorf("%w: invalid credentials", ErrForbidden)
	}

	if req.ConfirmPassword != "" {
		if !utils.IsValidPassword(req.ConfirmPassword) {
			return fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
		}
		if err := user.UpdatePassword(req.ConfirmPassword); err != nil {
			return err
		}
	}

	if name := utils.SanitizeString(req.Name); name != "" {
		user.Name = name
	}
	if username := utils.SanitizeString(req.Username); username != "" {
		user.Username = username
	}
	if email := utils.SanitizeString(req.Email); email != "" {
		if !utils.IsValidEmail(email) {
			return fmt.Errorf("%w: invalid email format", ErrValidation)
		}
		user.Email = email
	}
	if phone := utils.SanitizeString(req.PhoneNumber); phone != "" {
		user.PhoneNumber = phone
	}
	if address := utils.SanitizeString(req.Address); address != "" {
		user.Address = address
	}
	if req.ProfilePicture != "" {
		user.ProfilePicture = req.ProfilePicture
	}

	return s.db.WithContext(ctx).Save(&user).Error
}

// PublicProfile returns another user's password-stripped record.
func (s *AuthService) PublicProfile(ctx context.Context, userID int64) (*models.PublicUser, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, err
	}

	public := user.Public()
	return &public, nil
}
