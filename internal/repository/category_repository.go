package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Tomlord1122/dayplanner-backend/internal/domain"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
	// Delete removes an unreferenced category. When todos still point at it,
	// nothing is deleted and the returned count is the number of those todos
	// alongside ErrReferenced.
	Delete(ctx context.Context, id uint) (int64, error)
}

type gormCategoryRepository struct {
	base
}

func NewGormCategoryRepository(db *gorm.DB, timeout time.Duration) CategoryRepository {
	return &gormCategoryRepository{base{db: db, timeout: timeout}}
}

func (r *gormCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	db, cancel := r.conn(ctx)
	defer cancel()
	return translate(db.Create(category).Error)
}

func (r *gormCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	categories := []domain.Category{}
	if err := db.Order("sort_order ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *gormCategoryRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	values := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		values[k] = v
	}
	values["updated_at"] = time.Now()

	result := db.Model(&domain.Category{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormCategoryRepository) Delete(ctx context.Context, id uint) (int64, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var inUse int64
	err := db.Transaction(func(tx *gorm.DB) error {
		// Locking the category row blocks concurrent inserts that reference it
		// until this transaction ends, so the count below cannot go stale.
		var category domain.Category
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&category, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&domain.Todo{}).Where("category_id = ?", id).Count(&inUse).Error; err != nil {
			return err
		}
		if inUse > 0 {
			return fmt.Errorf("category %d: %w", id, ErrReferenced)
		}

		return tx.Delete(&domain.Category{}, id).Error
	})
	return inUse, err
}
