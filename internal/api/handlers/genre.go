package handlers

import (
	"github.com/bookswap/bookswap-backend/internal/services"
	"github.com/bookswap/bookswap-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

type GenreHandler struct {
	genreService *services.GenreService
}

func NewGenreHandler(genreService *services.GenreService) *GenreHandler {
	return &GenreHandler{genreService: genreService}
}

func (h *GenreHandler) AddGenre(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	genre, err := h.genreService.Create(c.Request.Context(), req.Name)
	if err != nil {
		sendServiceError(c, "Failed to add genre", err)
		return
	}

	utils.SendCreated(c, "Genre added successfully", genre)
}

func (h *GenreHandler) GetAllGenres(c *gin.Context) {
	genres, err := h.genreService.All(c.Request.Context())
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch genres", err)
		return
	}

	utils.SendSuccess(c, "Genres retrieved successfully", genres)
}
