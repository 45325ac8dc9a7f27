package handlers

import (
	"github.com/bookswap/bookswap-backend/internal/services"
	"github.com/bookswap/bookswap-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	buyerID := c.GetInt64("user_id")

	var req struct {
		BookID int64 `json:"book_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	order, err := h.orderService.PlaceOrder(c.Request.Context(), buyerID, req.BookID)
	if err != nil {
		sendServiceError(c, "Failed to place order", err)
		return
	}

	utils.SendCreated(c, "Order placed successfully", order)
}

func (h *OrderHandler) ConfirmOrder(c *gin.Context) {
	sellerID := c.GetInt64("user_id")

	orderID, ok := paramInt64(c, "order_id")
	if !ok {
		utils.SendValidationError(c, "Invalid order ID")
		return
	}

	if err := h.orderService.ConfirmOrder(c.Request.Context(), sellerID, orderID); err != nil {
		sendServiceError(c, "Failed to confirm order", err)
		return
	}

	utils.SendSuccess(c, "Order confirmed successfully", nil)
}

func (h *OrderHandler) DiscardOrder(c *gin.Context) {
	sellerID := c.GetInt64("user_id")

	orderID, ok := paramInt64(c, "order_id")
	if !ok {
		utils.SendValidationError(c, "Invalid order ID")
		return
	}

	if err := h.orderService.DiscardOrder(c.Request.Context(), sellerID, orderID); err != nil {
		sendServiceError(c, "Failed to discard order", err)
		return
	}

	utils.SendSuccess(c, "Order discarded successfully", nil)
}

func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	buyerID := c.GetInt64("user_id")

	orders, err := h.orderService.UserOrders(c.Request.Context(), buyerID)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch orders", err)
		return
	}

	utils.SendSuccess(c, "Orders retrieved successfully", orders)
}

func (h *OrderHandler) GetReceivedOrders(c *gin.Context) {
	sellerID := c.GetInt64("user_id")

	orders, err := h.orderService.ReceivedOrders(c.Request.Context(), sellerID)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch received orders", err)
		return
	}

	utils.SendSuccess(c, "Received orders retrieved successfully", orders)
}
