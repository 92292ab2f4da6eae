package services

import (
	"context"
	"errors"

	"github.com/mrlokans/books-api/internal/entities"
)

// ErrBookNotFound is returned by BookRepository implementations when no row
// matches the requested ID. Callers check it with errors.Is.
var ErrBookNotFound = errors.New("book not found")

// BookRepository is the data access contract for the books table.
type BookRepository interface {
	// FindAll returns every stored book. The slice is empty, not nil, when
	// the table has no rows.
	FindAll(ctx context.Context) ([]entities.Book, error)
	FindByID(ctx context.Context, id int64) (*entities.Book, error)
	// Save inserts the book when book.ID is zero and fills in the assigned
	// ID. A non-zero ID updates the existing row's title and author.
	Save(ctx context.Context, book *entities.Book) error
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
