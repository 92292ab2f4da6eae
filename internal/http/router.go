package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(SecurityHeadersMiddleware())

	health := NewHealthController(cfg.Pinger, cfg.Version)
	booksController := NewBooksController(cfg.Books)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Books API endpoints
	book := router.Group("/book")
	{
		book.GET("", booksController.GetAllBooks)
		book.GET("/count", booksController.CountBooks)
		book.GET("/:id", booksController.GetBookByID)
		book.POST("", booksController.CreateBook)
		book.DELETE("/:id", booksController.DeleteBook)
	}

	return router
}
