package models

import "time"

// AIReviewLog is one generated (or manually submitted) review for a
// journal entry. Rows are append-only: nothing updates or deletes them
// through normal operation. CreatedAt is assigned by the service in UTC.
type AIReviewLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	JournalID     uint      `gorm:"not null;index" json:"journal_id"`
	ReviewContent string    `gorm:"type:text" json:"review_content"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}
