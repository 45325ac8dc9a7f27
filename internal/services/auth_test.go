package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bookswap/bookswap-backend/internal/models"
	"github.com/bookswap/bookswap-backend/internal/services"
	"github.com/bookswap/bookswap-backend/internal/utils"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

func newAuthService(t *testing.T) (*services.AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return services.NewAuthService(db, services.NewSequenceService(db), testJWTSecret), db
}

func registerReq(email string) services.RegisterRequest {
	return services.RegisterRequest{
		Username: "alice",
		Name:     "Alice",
		Email:    email,
		Password: "password123",
	}
}

func TestRegister_LoginRoundTrip(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, registerReq("alice@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.UserID == 0 {
		t.Error("user id not assigned")
	}

	resp, err := auth.Login(ctx, services.LoginRequest{Email: "alice@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Error("empty token")
	}

	claims, err := utils.ValidateToken(resp.Token, testJWTSecret)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != user.UserID {
		t.Errorf("token user id = %d; want %d", claims.UserID, user.UserID)
	}
}

func TestRegister_Validation(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	req := registerReq("not-an-email")
	if _, err := auth.Register(ctx, req); !errors.Is(err, services.ErrValidation) {
		t.Errorf("bad email err = %v; want ErrValidation", err)
	}

	req = registerReq("bob@example.com")
	req.Password = "short"
	if _, err := auth.Register(ctx, req); !errors.Is(err, services.ErrValidation) {
		t.Errorf("short password err = %v; want ErrValidation", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, registerReq("alice@example.com")); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := auth.Register(ctx, registerReq("alice@example.com")); !errors.Is(err, services.ErrConflict) {
		t.Fatalf("duplicate err = %v; want ErrConflict", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, registerReq("alice@example.com")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := auth.Login(ctx, services.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
	if !errors.Is(err, services.ErrForbidden) {
		t.Errorf("wrong password err = %v; want ErrForbidden", err)
	}

	_, err = auth.Login(ctx, services.LoginRequest{Email: "missing@example.com", Password: "password123"})
	if !errors.Is(err, services.ErrForbidden) {
		t.Errorf("unknown email err = %v; want ErrForbidden", err)
	}
}

func TestPasswordStoredHashed(t *testing.T) {
	auth, db := newAuthService(t)

	user, err := auth.Register(context.Background(), registerReq("alice@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	var stored models.User
	db.Where("user_id = ?", user.UserID).First(&stored)
	if stored.Password == "password123" {
		t.Fatal("password stored in plaintext")
	}
	if !stored.CheckPassword("password123") {
		t.Error("stored hash does not verify the original password")
	}
}

func TestUpdateProfile_RequiresCurrentPassword(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, registerReq("alice@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	err = auth.UpdateProfile(ctx, user.UserID, services.UpdateProfileRequest{
		Name:     "Mallory",
		Password: "wrong-password",
	})
	if !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("err = %v; want ErrForbidden", err)
	}
}

func TestUpdateProfile_PatchAndPasswordChange(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, registerReq("alice@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	err = auth.UpdateProfile(ctx, user.UserID, services.UpdateProfileRequest{
		Name:            "Alice B",
		Password:        "password123",
		ConfirmPassword: "newpassword456",
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	if _, err := auth.Login(ctx, services.LoginRequest{Email: "alice@example.com", Password: "password123"}); !errors.Is(err, services.ErrForbidden) {
		t.Error("old password still accepted after change")
	}
	resp, err := auth.Login(ctx, services.LoginRequest{Email: "alice@example.com", Password: "newpassword456"})
	if err != nil {
		t.Fatalf("Login with new password: %v", err)
	}
	if resp.User.Name != "Alice B" {
		t.Errorf("name = %q; want patched name", resp.User.Name)
	}
}

func TestProfile_IncludesBooks(t *testing.T) {
	auth, db := newAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, registerReq("alice@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	createBook(t, db, 1, user.UserID)

	profile, err := auth.Profile(ctx, user.UserID)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if len(profile.Books) != 1 {
		t.Errorf("books len = %d; want 1", len(profile.Books))
	}
}

func TestPublicProfile_NotFound(t *testing.T) {
	auth, _ := newAuthService(t)

	if _, err := auth.PublicProfile(context.Background(), 99); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("err = %v; want ErrNotFound", err)
	}
}
