package handlers

import (
	"github.com/bookswap/bookswap-backend/internal/services"
	"github.com/bookswap/bookswap-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService   *services.AuthService
	uploadService *services.UploadService
}

func NewAuthHandler(authService *services.AuthService, uploadService *services.UploadService) *AuthHandler {
	return &AuthHandler{authService: authService, uploadService: uploadService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		sendServiceError(c, "Registration failed", err)
		return
	}

	utils.SendCreated(c, "User registered successfully", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.SendUnauthorized(c, "Invalid credentials")
		return
	}

	utils.SendSuccess(c, "Login successful", response)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")

	profile, err := h.authService.Profile(c.Request.Context(), userID)
	if err != nil {
		sendServiceError(c, "Failed to fetch profile", err)
		return
	}

	utils.SendSuccess(c, "Profile retrieved successfully", profile)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req services.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	// Optional avatar upload alongside the form fields.
	if file, header, err := c.Request.FormFile("profile_picture"); err == nil {
		defer file.Close()
		if !h.uploadService.Enabled() {
			utils.SendValidationError(c, "Image uploads are not configured")
			return
		}
		result, err := h.uploadService.UploadImage(file, header, "users/avatars")
		if err != nil {
			sendServiceError(c, "Failed to upload profile picture", err)
			return
		}
		req.ProfilePicture = result.URL
	}

	if err := h.authService.UpdateProfile(c.Request.Context(), userID, req); err != nil {
		sendServiceError(c, "Failed to update profile", err)
		return
	}

	utils.SendSuccess(c, "Profile updated successfully", nil)
}

func (h *AuthHandler) GetPublicProfile(c *gin.Context) {
	userID, ok := paramInt64(c, "user_id")
	if !ok {
		utils.SendValidationError(c, "Invalid user ID")
		return
	}

	user, err := h.authService.PublicProfile(c.Request.Context(), userID)
	if err != nil {
		sendServiceError(c, "Failed to fetch user", err)
		return
	}

	utils.SendSuccess(c, "User retrieved successfully", user)
}
