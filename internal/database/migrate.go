package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Tomlord1122/dayplanner-backend/internal/domain"
)

// defaultCategories are keyed by fixed ids so seeding can run on every start.
func defaultCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "Personal", Color: "#6b46c1", SortOrder: 1},
		{ID: 2, Name: "Grocery List", Color: "#059669", SortOrder: 2},
		{ID: 3, Name: "Restaurants", Color: "#dc2626", SortOrder: 3},
		{ID: 4, Name: "Books to Read", Color: "#7c2d12", SortOrder: 4},
		{ID: 5, Name: "Things to Buy", Color: "#1d4ed8", SortOrder: 5},
	}
}

// Migrate creates or updates the schema and seeds the default categories.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Category{}, &domain.Todo{}, &domain.TodoMigration{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return Seed(db)
}

// Seed inserts any missing default category and moves the id sequence past
// the seeded ids so later inserts do not collide with them.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		categories := defaultCategories()
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&categories).Error; err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		err := tx.Exec(`SELECT setval(pg_get_serial_sequence('categories', 'id'),
			(SELECT COALESCE(MAX(id), 1) FROM categories))`).Error
		if err != nil {
			return fmt.Errorf("advance category id sequence: %w", err)
		}
		return nil
	})
}
