// Package interfaces documents the core abstractions used throughout the application.
//
// # Data Access Interfaces
//
//   - BookRepository: CRUD over the books table (internal/services/interfaces.go)
//   - Pinger: store reachability for /health (internal/services/interfaces.go)
//
// # Implementations
//
//   - books.Repository: gorm, SQLite by default (internal/database/books)
//   - postgres.BookRepository: pgx connection pool (internal/database/postgres)
//
// A missing row is always reported as services.ErrBookNotFound so the HTTP
// layer can map it to 404 regardless of the backing store.
package interfaces
