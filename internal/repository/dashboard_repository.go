package repository

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/Tomlord1122/dayplanner-backend/internal/domain"
)

// DashboardRows is everything the dashboard needs, read from one snapshot.
type DashboardRows struct {
	// Scheduled holds todos dated within the requested range, ordered by
	// (scheduled_date, sort_order, created_at, id).
	Scheduled []domain.TodoView
	// Someday holds undated todos ordered by (category_id NULLS LAST,
	// sort_order, created_at, id).
	Someday    []domain.TodoView
	Categories []domain.Category
}

type DashboardRepository interface {
	Load(ctx context.Context, from, to string) (*DashboardRows, error)
}

type gormDashboardRepository struct {
	base
}

func NewGormDashboardRepository(db *gorm.DB, timeout time.Duration) DashboardRepository {
	return &gormDashboardRepository{base{db: db, timeout: timeout}}
}

// Load runs all reads in one read-only REPEATABLE READ transaction so that a
// concurrent rollover is either fully visible or not at all.
func (r *gormDashboardRepository) Load(ctx context.Context, from, to string) (*DashboardRows, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	rows := &DashboardRows{
		Scheduled:  []domain.TodoView{},
		Someday:    []domain.TodoView{},
		Categories: []domain.Category{},
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		err := todoViews(tx).
			Where("t.scheduled_date >= ? AND t.scheduled_date <= ?", from, to).
			Order("t.scheduled_date ASC, t.sort_order ASC, t.created_at ASC, t.id ASC").
			Scan(&rows.Scheduled).Error
		if err != nil {
			return err
		}

		err = todoViews(tx).
			Where("t.scheduled_date IS NULL").
			Order("t.category_id ASC NULLS LAST, t.sort_order ASC, t.created_at ASC, t.id ASC").
			Scan(&rows.Someday).Error
		if err != nil {
			return err
		}

		return tx.Order("sort_order ASC, name ASC").Find(&rows.Categories).Error
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
