package handlers

import (
	"github.com/bookswap/bookswap-backend/internal/services"
	"github.com/bookswap/bookswap-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) AddReview(c *gin.Context) {
	reviewerID := c.GetInt64("user_id")

	recipientID, ok := paramInt64(c, "user_id")
	if !ok {
		utils.SendValidationError(c, "Invalid user ID")
		return
	}

	var req struct {
		Review string `json:"review" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	review, err := h.reviewService.SubmitReview(c.Request.Context(), reviewerID, recipientID, req.Review)
	if err != nil {
		sendServiceError(c, "Failed to submit review", err)
		return
	}

	utils.SendSuccess(c, "Review submitted successfully", review)
}

func (h *ReviewHandler) GetUserReviews(c *gin.Context) {
	userID, ok := paramInt64(c, "user_id")
	if !ok {
		utils.SendValidationError(c, "Invalid user ID")
		return
	}

	reviews, err := h.reviewService.UserReviews(c.Request.Context(), userID)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch reviews", err)
		return
	}

	utils.SendSuccess(c, "Reviews retrieved successfully", reviews)
}
