package domain

import "time"

// TodoMigration records one todo being carried from FromDate to ToDate.
// Rows are only ever inserted by the rollover sweep.
type TodoMigration struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TodoID     uint      `gorm:"not null;index" json:"todo_id"`
	Todo       *Todo     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	FromDate   string    `gorm:"type:varchar(10);not null" json:"from_date"`
	ToDate     string    `gorm:"type:varchar(10);not null" json:"to_date"`
	MigratedAt time.Time `gorm:"not null;index" json:"migrated_at"`
}
