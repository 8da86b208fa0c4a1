package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/models"
)

// journalService handles journal-related business logic.
type journalService struct {
	db *gorm.DB
}

// NewJournalService creates a new JournalServicer.
func NewJournalService(db *gorm.DB) JournalServicer {
	return &journalService{db: db}
}

// withChildren adds the preloads that hydrate a journal's owned rows.
// Sell records come back in insertion order, review logs oldest first;
// every listing endpoint uses the same ordering.
func withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("SellRecords", func(db *gorm.DB) *gorm.DB {
			return db.Order("sell_records.id ASC")
		}).
		Preload("AIReviewLogs", func(db *gorm.DB) *gorm.DB {
			return db.Order("ai_review_logs.created_at ASC")
		})
}

// normalize replaces nil child slices with empty ones so journals without
// children serialize as [] rather than null.
func normalize(j *models.Journal) {
	if j.SellRecords == nil {
		j.SellRecords = []models.SellRecord{}
	}
	if j.AIReviewLogs == nil {
		j.AIReviewLogs = []models.AIReviewLog{}
	}
}

// ListJournals returns journals newest-first with their sell records and
// review logs embedded. Archived journals are excluded unless
// includeArchived is set.
func (s *journalService) ListJournals(includeArchived bool) ([]models.Journal, error) {
	query := withChildren(s.db)
	if !includeArchived {
		query = query.Where("archived = ?", false)
	}

	var journals []models.Journal
	if err := query.Order("id DESC").Find(&journals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range journals {
		normalize(&journals[i])
	}
	return journals, nil
}

// ListArchivedJournals returns only archived journals, newest-first,
// hydrated exactly like ListJournals.
func (s *journalService) ListArchivedJournals() ([]models.Journal, error) {
	var journals []models.Journal
	if err := withChildren(s.db).Where("archived = ?", true).
		Order("id DESC").Find(&journals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range journals {
		normalize(&journals[i])
	}
	return journals, nil
}

// GetJournalByID returns one fully hydrated journal.
func (s *journalService) GetJournalByID(id uint) (*models.Journal, error) {
	var journal models.Journal
	if err := withChildren(s.db).First(&journal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJournalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	normalize(&journal)
	return &journal, nil
}

// CreateJournal inserts a journal and all submitted sell records as one
// atomic unit. If any sell-record insert fails the journal row does not
// persist either.
func (s *journalService) CreateJournal(input JournalInput) (*models.Journal, error) {
	journal := &models.Journal{
		Date:             input.Date,
		Asset:            input.Asset,
		Amount:           input.Amount,
		Price:            input.Price,
		Strategy:         input.Strategy,
		Reasons:          input.Reasons,
		Risks:            input.Risks,
		ExpectedReturn:   input.ExpectedReturn,
		ExitPlan:         input.ExitPlan,
		MarketConditions: input.MarketConditions,
		EmotionalState:   input.EmotionalState,
		Archived:         input.Archived,
		ExitDate:         input.ExitDate,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if txErr := tx.Create(journal).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		if txErr := insertSellRecords(tx, journal.ID, input.SellRecords); txErr != nil {
			return txErr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetJournalByID(journal.ID)
}

// UpdateJournal performs a full-row replace of the journal's fields and
// swaps its entire sell-record set, all in one transaction. The existence
// check runs first so an unknown id never touches any sell record.
func (s *journalService) UpdateJournal(id uint, input JournalInput) (*models.Journal, error) {
	var existing models.Journal
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJournalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"date":              input.Date,
			"asset":             input.Asset,
			"amount":            input.Amount,
			"price":             input.Price,
			"strategy":          input.Strategy,
			"reasons":           input.Reasons,
			"risks":             input.Risks,
			"expected_return":   input.ExpectedReturn,
			"exit_plan":         input.ExitPlan,
			"market_conditions": input.MarketConditions,
			"emotional_state":   input.EmotionalState,
			"archived":          input.Archived,
			"exit_date":         input.ExitDate,
		}
		if txErr := tx.Model(&models.Journal{}).Where("id = ?", id).Updates(updates).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}

		// Replace, never diff: drop the old set and insert the new one.
		if txErr := tx.Where("journal_id = ?", id).Delete(&models.SellRecord{}).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		if txErr := insertSellRecords(tx, id, input.SellRecords); txErr != nil {
			return txErr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetJournalByID(id)
}

// ArchiveJournal flags a journal as archived. Archiving an already
// archived journal succeeds with no effect.
func (s *journalService) ArchiveJournal(id uint) error {
	return s.setArchived(id, true)
}

// UnarchiveJournal clears the archived flag. Idempotent like ArchiveJournal.
func (s *journalService) UnarchiveJournal(id uint) error {
	return s.setArchived(id, false)
}

func (s *journalService) setArchived(id uint, archived bool) error {
	var journal models.Journal
	if err := s.db.First(&journal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrJournalNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(&journal).Update("archived", archived).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// insertSellRecords inserts the submitted records one by one so ids follow
// submission order.
func insertSellRecords(tx *gorm.DB, journalID uint, inputs []SellRecordInput) error {
	for _, in := range inputs {
		record := &models.SellRecord{
			JournalID: journalID,
			Date:      in.Date,
			Price:     in.Price,
			Amount:    in.Amount,
			Reason:    in.Reason,
		}
		if err := tx.Create(record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}
