// Package dbtest starts a throwaway PostgreSQL container for integration tests.
package dbtest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Tomlord1122/dayplanner-backend/internal/database"
)

var shared struct {
	once      sync.Once
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	err       error
}

func start() {
	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("dayplanner"),
		tcpostgres.WithUsername("dayplanner"),
		tcpostgres.WithPassword("dayplanner"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	shared.container = container
	if err != nil {
		shared.err = err
		return
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		shared.err = err
		return
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		shared.err = err
		return
	}
	if err := database.Migrate(db); err != nil {
		shared.err = err
		return
	}
	shared.db = db
}

// New returns a migrated database with empty todo tables and only the seeded
// categories. The container is shared by every test in the binary; call
// Terminate from TestMain. Tests are skipped when no container runtime is available.
func New(t *testing.T) *gorm.DB {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	shared.once.Do(start)
	if shared.err != nil {
		t.Fatalf("starting postgres container: %v", shared.err)
	}

	Reset(t, shared.db)
	return shared.db
}

// Reset truncates all tables and re-seeds the default categories.
func Reset(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.Exec("TRUNCATE todo_migrations, todos, categories RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("truncating tables: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("seeding: %v", err)
	}
}

// Terminate stops the shared container, if one was started.
func Terminate() {
	if shared.container != nil {
		_ = shared.container.Terminate(context.Background())
	}
}
