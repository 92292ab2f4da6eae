// Package books provides gorm-backed storage for the books table.
//
// # Usage
//
//	repo := books.NewRepository(db.DB)
//	book, err := repo.FindByID(ctx, 3)
//	if errors.Is(err, services.ErrBookNotFound) {
//		// no such row
//	}
package books

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/books-api/internal/entities"
	"github.com/mrlokans/books-api/internal/services"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindAll retrieves every book ordered by ID.
func (r *Repository) FindAll(ctx context.Context) ([]entities.Book, error) {
	books := []entities.Book{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&books).Error
	return books, err
}

// FindByID retrieves a book by its ID.
func (r *Repository) FindByID(ctx context.Context, id int64) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Save inserts a new book or updates an existing one.
func (r *Repository) Save(ctx context.Context, book *entities.Book) error {
	if book.ID == 0 {
		return r.db.WithContext(ctx).Create(book).Error
	}

	// A map, unlike a struct, also writes empty strings.
	result := r.db.WithContext(ctx).
		Model(&entities.Book{ID: book.ID}).
		Updates(map[string]any{"title": book.Title, "author": book.Author})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update book %d: %w", book.ID, services.ErrBookNotFound)
	}
	return nil
}

// DeleteByID permanently removes a book.
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&entities.Book{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete book %d: %w", id, services.ErrBookNotFound)
	}
	return nil
}

// Count returns the number of stored books.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entities.Book{}).Count(&total).Error
	return total, err
}
