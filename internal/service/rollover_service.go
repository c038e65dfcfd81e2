package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Tomlord1122/dayplanner-backend/internal/domain"
	"github.com/Tomlord1122/dayplanner-backend/internal/repository"
)

// RolloverResult reports one sweep. A zero MigratedCount is a normal outcome.
type RolloverResult struct {
	MigratedCount int                    `json:"migrated_count"`
	Today         string                 `json:"today"`
	Migrations    []domain.TodoMigration `json:"migrations"`
}

// RolloverService carries incomplete past-dated todos forward to today.
type RolloverService interface {
	// RunRollover is idempotent for a fixed today and safe to retry after
	// a store failure.
	RunRollover(ctx context.Context, today string) (*RolloverResult, error)
	ListMigrations(ctx context.Context, todoID *uint) ([]domain.TodoMigration, error)
}

type rolloverService struct {
	repo   repository.RolloverRepository
	logger *slog.Logger
	clock  func() time.Time
}

func NewRolloverService(repo repository.RolloverRepository, logger *slog.Logger) RolloverService {
	return &rolloverService{repo: repo, logger: logger, clock: time.Now}
}

func (s *rolloverService) RunRollover(ctx context.Context, today string) (*RolloverResult, error) {
	if !domain.ValidDate(today) {
		return nil, invalid("today %q is not a valid YYYY-MM-DD date", today)
	}

	migrations, err := s.repo.MigratePastTodos(ctx, today, s.clock().UTC())
	if err != nil {
		return nil, storeError("rollover", err)
	}
	if migrations == nil {
		migrations = []domain.TodoMigration{}
	}

	s.logger.Info("rollover finished", "today", today, "migrated_count", len(migrations))
	return &RolloverResult{
		MigratedCount: len(migrations),
		Today:         today,
		Migrations:    migrations,
	}, nil
}

func (s *rolloverService) ListMigrations(ctx context.Context, todoID *uint) ([]domain.TodoMigration, error) {
	migrations, err := s.repo.ListMigrations(ctx, todoID)
	if err != nil {
		return nil, storeError("list migrations", err)
	}
	return migrations, nil
}
