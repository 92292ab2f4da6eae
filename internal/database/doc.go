// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # gorm connection setup and migrations
//	├── seed.go          # sample fixture used by the seed command
//	├── books/           # gorm book repository
//	└── postgres/        # pgx book repository
//
// # Usage
//
//	db, err := database.NewDatabase("./books.db", logger.Warn)
//	repo := books.NewRepository(db.DB)
//	book, err := repo.FindByID(ctx, 1)
//
// Both repositories implement services.BookRepository; the entrypoint picks
// one from the DATABASE_DRIVER setting.
package database
