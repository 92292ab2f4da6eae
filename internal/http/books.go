package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/books-api/internal/entities"
	"github.com/mrlokans/books-api/internal/services"
)

// CreateBookRequest is the body of POST /book. AuthorName is stored as the
// book's author; the field keeps its name for existing clients.
type CreateBookRequest struct {
	Title      string `json:"title"`
	AuthorName string `json:"authorName"`
}

type BooksController struct {
	repo services.BookRepository
}

func NewBooksController(repo services.BookRepository) *BooksController {
	return &BooksController{
		repo: repo,
	}
}

// GetAllBooks returns every book.
// GET /book
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	books, err := controller.repo.FindAll(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// GetBookByID returns a single book or 404.
// GET /book/:id
func (controller *BooksController) GetBookByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.repo.FindByID(c.Request.Context(), id)
	if errors.Is(err, services.ErrBookNotFound) {
		respondNotFound(c)
		return
	}
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// CreateBook stores a new book and returns it with its assigned ID.
// POST /book
func (controller *BooksController) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book := entities.Book{
		Title:  req.Title,
		Author: req.AuthorName,
	}
	if err := controller.repo.Save(c.Request.Context(), &book); err != nil {
		respondInternalError(c, err, "create book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// DeleteBook permanently removes a book.
// DELETE /book/:id
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := controller.repo.DeleteByID(c.Request.Context(), id)
	if errors.Is(err, services.ErrBookNotFound) {
		respondNotFound(c)
		return
	}
	if err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	c.Status(http.StatusOK)
}

// CountBooks returns the number of books as a bare JSON integer.
// GET /book/count
func (controller *BooksController) CountBooks(c *gin.Context) {
	total, err := controller.repo.Count(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "count books")
		return
	}
	c.JSON(http.StatusOK, total)
}
