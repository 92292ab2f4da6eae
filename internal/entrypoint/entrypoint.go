package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/books-api/internal/config"
	"github.com/mrlokans/books-api/internal/database"
	"github.com/mrlokans/books-api/internal/database/books"
	"github.com/mrlokans/books-api/internal/database/postgres"
	http_controllers "github.com/mrlokans/books-api/internal/http"
	"github.com/mrlokans/books-api/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Store bundles the repository with its health check and cleanup.
type Store struct {
	Books  services.BookRepository
	Pinger services.Pinger
	Close  func() error
}

// OpenStore connects to the database selected by cfg.Database.Driver.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Database.Driver {
	case config.DatabaseDriverSQLite, "":
		db, err := database.NewDatabase(cfg.Database.Path, database.ParseLogLevel(cfg.Database.LogLevel))
		if err != nil {
			return nil, err
		}
		return &Store{
			Books:  books.NewRepository(db.DB),
			Pinger: db,
			Close:  db.Close,
		}, nil

	case config.DatabaseDriverPostgres:
		pool, err := postgres.Open(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		repo := postgres.NewBookRepository(pool, cfg.Database.QueryTimeout)
		return &Store{
			Books:  repo,
			Pinger: repo,
			Close: func() error {
				pool.Close()
				return nil
			},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill -9 can't be caught, so only SIGINT and SIGTERM are handled
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting books-api v%s", version)

	if cfg.HTTP.Mode != "" {
		gin.SetMode(cfg.HTTP.Mode)
	}

	store, err := OpenStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	log.Printf("Using %s book store", cfg.Database.Driver)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Books:   store.Books,
		Pinger:  store.Pinger,
		Version: version,
	})

	onShutdown := func(ctx context.Context) {
		if err := store.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}

	Serve(router, cfg, onShutdown)
}

// Seed inserts the sample books into the configured store.
func Seed(cfg *config.Config) error {
	ctx := context.Background()
	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	seeded, err := database.SeedBooks(ctx, store.Books, database.SampleBooks)
	if err != nil {
		return err
	}
	log.Printf("Seeded %d books", len(seeded))
	return nil
}
