package http

import (
	"github.com/mrlokans/books-api/internal/services"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Books services.BookRepository

	// Store health check, optional
	Pinger services.Pinger

	// Application info
	Version string
}
