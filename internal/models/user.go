package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	UserID         int64  `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	Username       string `json:"username" gorm:"not null"`
	Name           string `json:"name" gorm:"not null"`
	Email          string `json:"email" gorm:"unique;not null"`
	PhoneNumber    string `json:"phone_number"`
	Address        string `json:"address"`
	Password       string `json:"-" gorm:"not null"` // Hide password in JSON
	ProfilePicture string `json:"profile_picture"`
}

// BeforeCreate hook for password hashing
func (u *User) BeforeCreate(tx *gorm.DB) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies the password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UpdatePassword re-hashes and sets a new password
func (u *User) UpdatePassword(newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// PublicUser is the password-stripped shape returned for profile lookups.
type PublicUser struct {
	UserID         int64  `json:"user_id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	Address        string `json:"address"`
	ProfilePicture string `json:"profile_picture"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		UserID:         u.UserID,
		Username:       u.Username,
		Name:           u.Name,
		Email:          u.Email,
		PhoneNumber:    u.PhoneNumber,
		Address:        u.Address,
		ProfilePicture: u.ProfilePicture,
	}
}
