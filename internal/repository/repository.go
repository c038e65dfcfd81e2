package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var (
	// ErrDuplicate reports a unique constraint violation.
	ErrDuplicate = errors.New("duplicate value")
	// ErrInvalidReference reports a foreign key pointing at a missing row.
	ErrInvalidReference = errors.New("referenced row does not exist")
	// ErrReferenced reports a delete blocked by rows that still point at the target.
	ErrReferenced = errors.New("row is still referenced")
)

// translate maps driver errors to the package sentinels while keeping the cause.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w (%s): %w", ErrDuplicate, pgErr.ConstraintName, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w (%s): %w", ErrInvalidReference, pgErr.ConstraintName, err)
		}
	}
	return err
}

// base bounds every store call with the configured timeout.
type base struct {
	db      *gorm.DB
	timeout time.Duration
}

func (b base) conn(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	if b.timeout <= 0 {
		return b.db.WithContext(ctx), func() {}
	}
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	return b.db.WithContext(ctx), cancel
}

// todoViewColumns selects a todo plus its category's display fields.
const todoViewColumns = `t.id, t.title, t.completed, t.category_id,
	c.name AS category_name, c.color AS category_color,
	t.scheduled_date, t.sort_order, t.color, t.recurring_pattern, t.parent_id,
	t.created_at, t.updated_at`

func todoViews(db *gorm.DB) *gorm.DB {
	return db.Table("todos AS t").
		Select(todoViewColumns).
		Joins("LEFT JOIN categories AS c ON c.id = t.category_id")
}
