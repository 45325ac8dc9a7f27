package handlers

import (
	"github.com/bookswap/bookswap-backend/internal/services"
	"github.com/bookswap/bookswap-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService *services.RatingService
}

func NewRatingHandler(ratingService *services.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

func (h *RatingHandler) AddRating(c *gin.Context) {
	raterID := c.GetInt64("user_id")

	recipientID, ok := paramInt64(c, "user_id")
	if !ok {
		utils.SendValidationError(c, "Invalid user ID")
		return
	}

	var req struct {
		Rating *float64 `json:"rating" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	rating, err := h.ratingService.SubmitRating(c.Request.Context(), raterID, recipientID, *req.Rating)
	if err != nil {
		sendServiceError(c, "Failed to submit rating", err)
		return
	}

	utils.SendSuccess(c, "Rating submitted successfully", rating)
}

func (h *RatingHandler) GetRatingStats(c *gin.Context) {
	userID, ok := paramInt64(c, "user_id")
	if !ok {
		utils.SendValidationError(c, "Invalid user ID")
		return
	}

	stats, err := h.ratingService.Stats(c.Request.Context(), userID)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch rating stats", err)
		return
	}

	utils.SendSuccess(c, "Rating stats retrieved successfully", stats)
}
