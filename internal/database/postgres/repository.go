// Package postgres stores books in PostgreSQL through a pgx connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mrlokans/books-api/internal/entities"
	"github.com/mrlokans/books-api/internal/services"
)

const createBooksTable = `
CREATE TABLE IF NOT EXISTS books (
	id     BIGSERIAL PRIMARY KEY,
	title  TEXT,
	author TEXT
)`

// Open creates a pool for dsn, checks connectivity and makes sure the books
// table exists.
func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot create db pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("cannot ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, createBooksTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create books table: %w", err)
	}

	log.Println("database connection OK")
	return pool, nil
}

type BookRepository struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewBookRepository(db *pgxpool.Pool, timeout time.Duration) *BookRepository {
	return &BookRepository{db: db, timeout: timeout}
}

func (r *BookRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *BookRepository) FindAll(ctx context.Context) ([]entities.Book, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT id, COALESCE(title, ''), COALESCE(author, '') FROM books ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []entities.Book{}
	for rows.Next() {
		var b entities.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookRepository) FindByID(ctx context.Context, id int64) (*entities.Book, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b entities.Book
	err := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(title, ''), COALESCE(author, '') FROM books WHERE id = $1`, id,
	).Scan(&b.ID, &b.Title, &b.Author)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, services.ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookRepository) Save(ctx context.Context, book *entities.Book) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if book.ID == 0 {
		return r.db.QueryRow(ctx,
			`INSERT INTO books (title, author) VALUES ($1, $2) RETURNING id`,
			book.Title, book.Author,
		).Scan(&book.ID)
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE books SET title = $1, author = $2 WHERE id = $3`,
		book.Title, book.Author, book.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update book %d: %w", book.ID, services.ErrBookNotFound)
	}
	return nil
}

func (r *BookRepository) DeleteByID(ctx context.Context, id int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete book %d: %w", id, services.ErrBookNotFound)
	}
	return nil
}

func (r *BookRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&total)
	return total, err
}

func (r *BookRepository) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.Ping(ctx)
}
