package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Tomlord1122/dayplanner-backend/internal/domain"
)

// TodoRepository defines the interface for todo data operations
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) error
	FindByID(ctx context.Context, id uint) (*domain.TodoView, error)
	// List returns todos scheduled on date, or every todo when date is nil.
	List(ctx context.Context, date *string) ([]domain.TodoView, error)
	// Update applies column/value pairs to one todo. It returns
	// gorm.ErrRecordNotFound when no row has the id.
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type gormTodoRepository struct {
	base
}

func NewGormTodoRepository(db *gorm.DB, timeout time.Duration) TodoRepository {
	return &gormTodoRepository{base{db: db, timeout: timeout}}
}

func (r *gormTodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	db, cancel := r.conn(ctx)
	defer cancel()
	return translate(db.Create(todo).Error)
}

func (r *gormTodoRepository) FindByID(ctx context.Context, id uint) (*domain.TodoView, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var views []domain.TodoView
	if err := todoViews(db).Where("t.id = ?", id).Limit(1).Scan(&views).Error; err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &views[0], nil
}

func (r *gormTodoRepository) List(ctx context.Context, date *string) ([]domain.TodoView, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	query := todoViews(db)
	if date != nil {
		query = query.Where("t.scheduled_date = ?", *date)
	}

	views := []domain.TodoView{}
	err := query.
		Order("t.scheduled_date ASC NULLS LAST, t.sort_order ASC, t.created_at ASC, t.id ASC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *gormTodoRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	values := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		values[k] = v
	}
	values["updated_at"] = time.Now()

	result := db.Model(&domain.Todo{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a todo permanently. Children keep existing with parent_id
// cleared by the foreign key's ON DELETE SET NULL.
func (r *gormTodoRepository) Delete(ctx context.Context, id uint) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	result := db.Delete(&domain.Todo{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
