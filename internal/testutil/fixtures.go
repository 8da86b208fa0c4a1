package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"tradelog/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestJournal creates a journal with distinct field values and no children.
func CreateTestJournal(t *testing.T, db *gorm.DB) *models.Journal {
	t.Helper()

	journal := &models.Journal{
		Date:             "2024-01-15",
		Asset:            fmt.Sprintf("ASSET%d", nextID()),
		Amount:           "10",
		Price:            "150",
		Strategy:         "swing",
		Reasons:          "Strong earnings momentum",
		Risks:            "Broad market pullback",
		ExpectedReturn:   "12%",
		ExitPlan:         "Sell half at +10%",
		MarketConditions: "Risk-on",
		EmotionalState:   "Calm",
	}
	if err := db.Create(journal).Error; err != nil {
		t.Fatalf("failed to create test journal: %v", err)
	}
	return journal
}

// CreateTestArchivedJournal creates a journal already flagged as archived.
func CreateTestArchivedJournal(t *testing.T, db *gorm.DB) *models.Journal {
	t.Helper()

	journal := CreateTestJournal(t, db)
	if err := db.Model(journal).Update("archived", true).Error; err != nil {
		t.Fatalf("failed to archive test journal: %v", err)
	}
	return journal
}

// CreateTestSellRecord attaches one sell record to a journal.
func CreateTestSellRecord(t *testing.T, db *gorm.DB, journalID uint) *models.SellRecord {
	t.Helper()

	record := &models.SellRecord{
		JournalID: journalID,
		Date:      "2024-02-01",
		Price:     "160",
		Amount:    "5",
		Reason:    fmt.Sprintf("partial profit %d", nextID()),
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test sell record: %v", err)
	}
	return record
}

// CreateTestReviewLog attaches one review log to a journal with the given
// creation time.
func CreateTestReviewLog(t *testing.T, db *gorm.DB, journalID uint, createdAt time.Time) *models.AIReviewLog {
	t.Helper()

	log := &models.AIReviewLog{
		JournalID:     journalID,
		ReviewContent: fmt.Sprintf("review %d", nextID()),
		CreatedAt:     createdAt,
	}
	if err := db.Create(log).Error; err != nil {
		t.Fatalf("failed to create test review log: %v", err)
	}
	return log
}
