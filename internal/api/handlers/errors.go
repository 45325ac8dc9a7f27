package handlers

import (
	"errors"
	"net/http"

	"github.com/bookswap/bookswap-backend/internal/services"
	"github.com/bookswap/bookswap-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// sendServiceError maps the service error taxonomy onto HTTP status codes.
func sendServiceError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.SendError(c, http.StatusBadRequest, message, err)
	case errors.Is(err, services.ErrNotFound):
		utils.SendError(c, http.StatusNotFound, message, err)
	case errors.Is(err, services.ErrForbidden):
		utils.SendError(c, http.StatusForbidden, message, err)
	case errors.Is(err, services.ErrConflict):
		utils.SendError(c, http.StatusConflict, message, err)
	default:
		utils.SendInternalError(c, message, err)
	}
}
