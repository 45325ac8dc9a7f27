package routes

import (
	"time"

	"github.com/bookswap/bookswap-backend/internal/api/handlers"
	"github.com/bookswap/bookswap-backend/internal/api/middleware"
	"github.com/bookswap/bookswap-backend/internal/cache"
	"github.com/bookswap/bookswap-backend/internal/config"
	"github.com/bookswap/bookswap-backend/internal/services"
	"github.com/bookswap/bookswap-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {
	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RateLimitMiddleware(cfg))

	// Initialize services
	sequenceService := services.NewSequenceService(db)
	emailService := services.NewEmailService(cfg)
	authService := services.NewAuthService(db, sequenceService, cfg.JWTSecret)
	bookService := services.NewBookService(db, sequenceService)
	orderService := services.NewOrderService(db, sequenceService, emailService)
	statsCache := cache.NewStatsCache(rdb, 5*time.Minute)
	ratingService := services.NewRatingService(db, sequenceService, orderService, statsCache)
	reviewService := services.NewReviewService(db, sequenceService, orderService)
	wishlistService := services.NewWishlistService(db)
	genreService := services.NewGenreService(db, sequenceService)

	var uploadService *services.UploadService
	if cfg.S3Bucket != "" {
		uploadService = services.NewUploadService(cfg)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, uploadService)
	bookHandler := handlers.NewBookHandler(bookService, uploadService)
	orderHandler := handlers.NewOrderHandler(orderService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	genreHandler := handlers.NewGenreHandler(genreService)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "message": "Server is running"})
	})

	api := router.Group("/api")

	// User routes
	user := api.Group("/user")
	{
		user.POST("/register", authHandler.Register)
		user.POST("/login", authHandler.Login)
		user.GET("/profile", middleware.AuthMiddleware(cfg), authHandler.GetProfile)
		user.PUT("/profile", middleware.AuthMiddleware(cfg), authHandler.UpdateProfile)
		user.GET("/uploader-profile/:user_id", middleware.AuthMiddleware(cfg), authHandler.GetPublicProfile)
	}

	// Book routes
	book := api.Group("/book")
	{
		book.POST("/add", middleware.AuthMiddleware(cfg), bookHandler.CreateBook)
		book.PUT("/:id", middleware.AuthMiddleware(cfg), bookHandler.UpdateBook)
		book.DELETE("/:id", middleware.AuthMiddleware(cfg), bookHandler.DeleteBook)
		book.GET("/book/:book_id", bookHandler.GetBook)
		book.GET("/allbooks", bookHandler.GetAllBooks)
		book.GET("/filter", bookHandler.FilterBooks)
		book.GET("/search", bookHandler.SearchBooks)
		book.GET("/userbooks/:user_id", bookHandler.GetUserBooks)
		book.GET("/uploader-profile/:book_id", middleware.AuthMiddleware(cfg), bookHandler.GetUploaderProfile)
	}

	// Order routes
	order := api.Group("/order", middleware.AuthMiddleware(cfg))
	{
		order.POST("/place-order", orderHandler.PlaceOrder)
		order.POST("/confirm-order/:order_id", orderHandler.ConfirmOrder)
		order.POST("/discard-order/:order_id", orderHandler.DiscardOrder)
		order.GET("/user-orders", orderHandler.GetUserOrders)
		order.GET("/received-orders", orderHandler.GetReceivedOrders)
	}

	// Rating routes
	rating := api.Group("/rating")
	{
		rating.POST("/add-rating/:user_id", middleware.AuthMiddleware(cfg), ratingHandler.AddRating)
		rating.GET("/ratings/:user_id", ratingHandler.GetRatingStats)
	}

	// Review routes
	review := api.Group("/review")
	{
		review.POST("/add-review/:user_id", middleware.AuthMiddleware(cfg), reviewHandler.AddReview)
		review.GET("/reviews/:user_id", reviewHandler.GetUserReviews)
	}

	// Wishlist routes
	wishlist := api.Group("/wishlist", middleware.AuthMiddleware(cfg))
	{
		wishlist.GET("", wishlistHandler.List)
		wishlist.POST("/toggle", wishlistHandler.Toggle)
	}

	// Genre routes
	genre := api.Group("/genre")
	{
		genre.POST("/add", middleware.AuthMiddleware(cfg), genreHandler.AddGenre)
		genre.GET("/all", genreHandler.GetAllGenres)
	}

	logger.Info("Routes initialized successfully")
}
