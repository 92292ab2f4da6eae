package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/books-api/internal/database"
	"github.com/mrlokans/books-api/internal/database/books"
	"github.com/mrlokans/books-api/internal/database/postgres"
	"github.com/mrlokans/books-api/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// BookRepository implementations
var _ services.BookRepository = (*books.Repository)(nil)
var _ services.BookRepository = (*postgres.BookRepository)(nil)

// =============================================================================
// Health Checks
// =============================================================================

// Pinger implementations
var _ services.Pinger = (*database.Database)(nil)
var _ services.Pinger = (*postgres.BookRepository)(nil)
