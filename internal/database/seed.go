package database

import (
	"context"
	"fmt"
	"log"

	"github.com/mrlokans/books-api/internal/entities"
	"github.com/mrlokans/books-api/internal/services"
)

// SampleBooks is the fixture inserted by the seed command.
var SampleBooks = []entities.Book{
	{Title: "Spring in Action", Author: "Craig Walls"},
	{Title: "Clean Code", Author: "Robert C. Martin"},
	{Title: "Normal book", Author: "Normal author"},
}

// SeedBooks inserts books in order through repo and returns the stored rows
// with their assigned IDs.
func SeedBooks(ctx context.Context, repo services.BookRepository, books []entities.Book) ([]entities.Book, error) {
	seeded := make([]entities.Book, 0, len(books))
	for _, b := range books {
		book := entities.Book{Title: b.Title, Author: b.Author}
		if err := repo.Save(ctx, &book); err != nil {
			return seeded, fmt.Errorf("failed to seed book %q: %w", b.Title, err)
		}
		log.Printf("Seeded book %d: %s", book.ID, book.Title)
		seeded = append(seeded, book)
	}
	return seeded, nil
}
