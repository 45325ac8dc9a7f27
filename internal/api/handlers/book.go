package handlers

import (
	"strconv"

	"github.com/bookswap/bookswap-backend/internal/services"
	"github.com/bookswap/bookswap-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	bookService   *services.BookService
	uploadService *services.UploadService
}

func NewBookHandler(bookService *services.BookService, uploadService *services.UploadService) *BookHandler {
	return &BookHandler{bookService: bookService, uploadService: uploadService}
}

func (h *BookHandler) CreateBook(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req services.CreateBookRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	// Cover image may arrive as a multipart file instead of a URL.
	if file, header, err := c.Request.FormFile("book_img"); err == nil {
		defer file.Close()
		if !h.uploadService.Enabled() {
			utils.SendValidationError(c, "Image uploads are not configured")
			return
		}
		result, err := h.uploadService.UploadImage(file, header, "books/covers")
		if err != nil {
			sendServiceError(c, "Failed to upload cover image", err)
			return
		}
		req.BookImgURL = result.URL
	}

	book, err := h.bookService.Create(c.Request.Context(), userID, req)
	if err != nil {
		sendServiceError(c, "Failed to add book", err)
		return
	}

	utils.SendCreated(c, "Book added successfully", book)
}

func (h *BookHandler) UpdateBook(c *gin.Context) {
	userID := c.GetInt64("user_id")

	bookID, ok := paramInt64(c, "id")
	if !ok {
		utils.SendValidationError(c, "Invalid book ID")
		return
	}

	var patch services.UpdateBookRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	book, err := h.bookService.Update(c.Request.Context(), userID, bookID, patch)
	if err != nil {
		sendServiceError(c, "Failed to update book", err)
		return
	}

	utils.SendSuccess(c, "Book updated successfully", book)
}

func (h *BookHandler) DeleteBook(c *gin.Context) {
	userID := c.GetInt64("user_id")

	bookID, ok := paramInt64(c, "id")
	if !ok {
		utils.SendValidationError(c, "Invalid book ID")
		return
	}

	if err := h.bookService.Delete(c.Request.Context(), userID, bookID); err != nil {
		sendServiceError(c, "Failed to delete book", err)
		return
	}

	utils.SendSuccess(c, "Book deleted successfully", nil)
}

func (h *BookHandler) GetBook(c *gin.Context) {
	bookID, ok := paramInt64(c, "book_id")
	if !ok {
		utils.SendValidationError(c, "Invalid book ID")
		return
	}

	book, err := h.bookService.Get(c.Request.Context(), bookID)
	if err != nil {
		sendServiceError(c, "Failed to fetch book", err)
		return
	}

	utils.SendSuccess(c, "Book retrieved successfully", book)
}

func (h *BookHandler) GetAllBooks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "40"))

	books, err := h.bookService.List(c.Request.Context(), page, limit)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch books", err)
		return
	}

	utils.SendSuccess(c, "Books retrieved successfully", books)
}

func (h *BookHandler) FilterBooks(c *gin.Context) {
	filter := services.BookFilter{
		Genre:    c.Query("genre"),
		BookType: c.Query("book_type"),
		Sort:     c.Query("sort"),
	}

	books, err := h.bookService.Filter(c.Request.Context(), filter)
	if err != nil {
		utils.SendInternalError(c, "Failed to filter books", err)
		return
	}

	utils.SendSuccess(c, "Books retrieved successfully", books)
}

func (h *BookHandler) SearchBooks(c *gin.Context) {
	books, err := h.bookService.Search(c.Request.Context(), c.Query("searchQuery"))
	if err != nil {
		utils.SendInternalError(c, "Failed to search books", err)
		return
	}

	utils.SendSuccess(c, "Books retrieved successfully", books)
}

func (h *BookHandler) GetUserBooks(c *gin.Context) {
	userID, ok := paramInt64(c, "user_id")
	if !ok {
		utils.SendValidationError(c, "Invalid user ID")
		return
	}

	books, err := h.bookService.UserBooks(c.Request.Context(), userID)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch user books", err)
		return
	}

	utils.SendSuccess(c, "Books retrieved successfully", books)
}

func (h *BookHandler) GetUploaderProfile(c *gin.Context) {
	bookID, ok := paramInt64(c, "book_id")
	if !ok {
		utils.SendValidationError(c, "Invalid book ID")
		return
	}

	user, err := h.bookService.UploaderProfile(c.Request.Context(), bookID)
	if err != nil {
		sendServiceError(c, "Failed to fetch uploader profile", err)
		return
	}

	utils.SendSuccess(c, "Uploader profile retrieved successfully", user)
}
