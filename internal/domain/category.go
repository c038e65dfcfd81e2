package domain

import "time"

// DefaultCategoryColor is applied when a category is created without a color.
const DefaultCategoryColor = "#6b7280"

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	Color     string    `gorm:"not null;default:'#000000'" json:"color"`
	SortOrder int       `gorm:"not null;default:0;index" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
