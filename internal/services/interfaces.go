package services

import (
	"context"

	"tradelog/internal/models"
)

// SellRecordInput carries one sell record submitted with a journal
// create or update.
type SellRecordInput struct {
	Date   string
	Price  string
	Amount string
	Reason string
}

// JournalInput carries the full set of journal fields for create and
// update. Updates are full replacements: every field is written and the
// existing sell-record set is swapped for SellRecords.
type JournalInput struct {
	Date             string
	Asset            string
	Amount           string
	Price            string
	Strategy         string
	Reasons          string
	Risks            string
	ExpectedReturn   string
	ExitPlan         string
	MarketConditions string
	EmotionalState   string
	Archived         bool
	ExitDate         *string
	SellRecords      []SellRecordInput
}

// ReviewInput carries the journal fields the AI review prompt is built from.
type ReviewInput struct {
	Date             string
	Asset            string
	Amount           string
	Price            string
	Strategy         string
	Reasons          string
	Risks            string
	ExpectedReturn   string
	ExitPlan         string
	MarketConditions string
	EmotionalState   string
}

// JournalServicer defines the contract for journal-related business logic.
type JournalServicer interface {
	ListJournals(includeArchived bool) ([]models.Journal, error)
	ListArchivedJournals() ([]models.Journal, error)
	GetJournalByID(id uint) (*models.Journal, error)
	CreateJournal(input JournalInput) (*models.Journal, error)
	UpdateJournal(id uint, input JournalInput) (*models.Journal, error)
	ArchiveJournal(id uint) error
	UnarchiveJournal(id uint) error
}

// ReviewServicer defines the contract for AI review log business logic.
type ReviewServicer interface {
	AddReviewLog(journalID uint, content string) (*models.AIReviewLog, error)
	GenerateReview(ctx context.Context, journalID uint, input ReviewInput) (*models.AIReviewLog, error)
}
