package domain

import "time"

// RecurringPattern is stored with a todo but never expanded into new instances.
type RecurringPattern string

const (
	RecurringDaily   RecurringPattern = "daily"
	RecurringWeekly  RecurringPattern = "weekly"
	RecurringMonthly RecurringPattern = "monthly"
	RecurringYearly  RecurringPattern = "yearly"
)

func (p RecurringPattern) IsValid() bool {
	switch p {
	case RecurringDaily, RecurringWeekly, RecurringMonthly, RecurringYearly:
		return true
	}
	return false
}

// Todo is a single planner item. A nil ScheduledDate puts it in the someday bucket.
type Todo struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"not null" json:"title"`
	Completed        bool      `gorm:"not null;default:false;index" json:"completed"`
	CategoryID       *uint     `gorm:"index" json:"category_id"`
	Category         *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	ScheduledDate    *string   `gorm:"type:varchar(10);index" json:"scheduled_date"`
	SortOrder        int       `gorm:"not null;default:0" json:"sort_order"`
	Color            *string   `json:"color"`
	RecurringPattern *string   `gorm:"type:varchar(16)" json:"recurring_pattern"`
	ParentID         *uint     `gorm:"index" json:"parent_id"`
	Parent           *Todo     `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TodoView is a todo joined with its category's display fields at read time.
type TodoView struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	Completed        bool      `json:"completed"`
	CategoryID       *uint     `json:"category_id"`
	CategoryName     *string   `json:"category_name,omitempty"`
	CategoryColor    *string   `json:"category_color,omitempty"`
	ScheduledDate    *string   `json:"scheduled_date"`
	SortOrder        int       `json:"sort_order"`
	Color            *string   `json:"color"`
	RecurringPattern *string   `json:"recurring_pattern"`
	ParentID         *uint     `json:"parent_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
