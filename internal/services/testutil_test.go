package services_test

import (
	"fmt"
	"testing"

	"github.com/bookswap/bookswap-backend/internal/database"
	"github.com/bookswap/bookswap-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the full schema. The
// pool is capped at one connection so every query sees the same memory DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, userID int64) *models.User {
	t.Helper()

	user := models.User{
		UserID:   userID,
		Username: fmt.Sprintf("user%d", userID),
		Name:     fmt.Sprintf("User %d", userID),
		Email:    fmt.Sprintf("user%d@example.com", userID),
		Password: "password123",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %d: %v", userID, err)
	}
	return &user
}

func createBook(t *testing.T, db *gorm.DB, bookID, ownerID int64) *models.Book {
	t.Helper()

	book := models.Book{
		BookID:        bookID,
		Title:         fmt.Sprintf("Book %d", bookID),
		Author:        "Author",
		BookCondition: models.ConditionUsed,
		UserID:        ownerID,
		IsForGiveaway: true,
	}
	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("create book %d: %v", bookID, err)
	}
	return &book
}
