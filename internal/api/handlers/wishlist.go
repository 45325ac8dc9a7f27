package handlers

import (
	"github.com/bookswap/bookswap-backend/internal/services"
	"github.com/bookswap/bookswap-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	wishlistService *services.WishlistService
}

func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

func (h *WishlistHandler) Toggle(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req struct {
		BookID int64 `json:"book_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	wished, err := h.wishlistService.Toggle(c.Request.Context(), userID, req.BookID)
	if err != nil {
		sendServiceError(c, "Failed to toggle wishlist", err)
		return
	}

	utils.SendSuccess(c, "Wishlist updated successfully", gin.H{"wished": wished})
}

func (h *WishlistHandler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")

	entries, err := h.wishlistService.List(c.Request.Context(), userID)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch wishlist", err)
		return
	}

	utils.SendSuccess(c, "Wishlist retrieved successfully", entries)
}
