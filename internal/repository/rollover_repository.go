package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Tomlord1122/dayplanner-backend/internal/domain"
)

// RolloverRepository moves overdue todos forward and keeps their audit trail.
type RolloverRepository interface {
	// MigratePastTodos moves every incomplete todo dated before today to
	// today and inserts one TodoMigration per moved todo, all in a single
	// transaction. It returns the inserted records.
	MigratePastTodos(ctx context.Context, today string, migratedAt time.Time) ([]domain.TodoMigration, error)
	// ListMigrations returns audit records newest first, optionally for one todo.
	ListMigrations(ctx context.Context, todoID *uint) ([]domain.TodoMigration, error)
}

type gormRolloverRepository struct {
	base
}

func NewGormRolloverRepository(db *gorm.DB, timeout time.Duration) RolloverRepository {
	return &gormRolloverRepository{base{db: db, timeout: timeout}}
}

func (r *gormRolloverRepository) MigratePastTodos(ctx context.Context, today string, migratedAt time.Time) ([]domain.TodoMigration, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var records []domain.TodoMigration
	err := db.Transaction(func(tx *gorm.DB) error {
		// FOR UPDATE makes concurrent sweeps queue on the same rows. Once the
		// first commits, PostgreSQL re-checks the predicate for the waiter and
		// the rows, now dated today, drop out.
		var due []domain.Todo
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "scheduled_date").
			Where("completed = ? AND scheduled_date IS NOT NULL AND scheduled_date < ?", false, today).
			Order("id").
			Find(&due).Error
		if err != nil {
			return fmt.Errorf("select overdue todos: %w", err)
		}
		if len(due) == 0 {
			return nil
		}

		ids := make([]uint, 0, len(due))
		records = make([]domain.TodoMigration, 0, len(due))
		for _, todo := range due {
			ids = append(ids, todo.ID)
			records = append(records, domain.TodoMigration{
				TodoID:     todo.ID,
				FromDate:   *todo.ScheduledDate,
				ToDate:     today,
				MigratedAt: migratedAt,
			})
		}

		err = tx.Model(&domain.Todo{}).
			Where("id IN ?", ids).
			Updates(map[string]any{"scheduled_date": today, "updated_at": migratedAt}).Error
		if err != nil {
			return fmt.Errorf("reschedule overdue todos: %w", err)
		}

		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("insert migration records: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *gormRolloverRepository) ListMigrations(ctx context.Context, todoID *uint) ([]domain.TodoMigration, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	query := db.Model(&domain.TodoMigration{})
	if todoID != nil {
		query = query.Where("todo_id = ?", *todoID)
	}

	records := []domain.TodoMigration{}
	if err := query.Order("migrated_at DESC, id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
