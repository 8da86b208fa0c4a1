package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/models"
	"tradelog/internal/review"
)

// reviewService handles AI review log business logic.
type reviewService struct {
	db        *gorm.DB
	generator review.Generator
}

// NewReviewService creates a new ReviewServicer.
func NewReviewService(db *gorm.DB, generator review.Generator) ReviewServicer {
	return &reviewService{db: db, generator: generator}
}

// AddReviewLog appends a manually submitted review to a journal.
func (s *reviewService) AddReviewLog(journalID uint, content string) (*models.AIReviewLog, error) {
	if err := s.journalExists(journalID); err != nil {
		return nil, err
	}
	return s.appendLog(journalID, content)
}

// GenerateReview invokes the review generator and persists the result as
// a new log row. Adapter failures surface as errors and persist nothing;
// a successful-but-critical review is still a success.
func (s *reviewService) GenerateReview(ctx context.Context, journalID uint, input ReviewInput) (*models.AIReviewLog, error) {
	if err := s.journalExists(journalID); err != nil {
		return nil, err
	}

	content, err := s.generator.Generate(ctx, review.Input{
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
	})
	if err != nil {
		if errors.Is(err, review.ErrNotConfigured) {
			return nil, apperrors.ErrReviewNotConfigured
		}
		return nil, apperrors.Wrap(apperrors.ErrReviewUpstream, err)
	}

	return s.appendLog(journalID, content)
}

func (s *reviewService) appendLog(journalID uint, content string) (*models.AIReviewLog, error) {
	log := &models.AIReviewLog{
		JournalID:     journalID,
		ReviewContent: content,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.db.Create(log).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return log, nil
}

func (s *reviewService) journalExists(journalID uint) error {
	var count int64
	if err := s.db.Model(&models.Journal{}).Where("id = ?", journalID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrJournalNotFound
	}
	return nil
}
