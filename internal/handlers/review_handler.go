package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/services"
)

// ReviewHandler handles AI review log requests.
type ReviewHandler struct {
	reviewService services.ReviewServicer
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService services.ReviewServicer) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ReviewLogRequest represents a manually submitted review.
type ReviewLogRequest struct {
	ReviewContent string `json:"review_content" binding:"required"`
}

// GenerateReviewRequest carries the journal fields the review is
// generated from.
type GenerateReviewRequest struct {
	Date             string `json:"date" binding:"required,trade_date"`
	Asset            string `json:"asset" binding:"required,max=100"`
	Amount           string `json:"amount" binding:"required,max=50"`
	Price            string `json:"price" binding:"required,max=50"`
	Strategy         string `json:"strategy" binding:"required,max=50"`
	Reasons          string `json:"reasons" binding:"required"`
	Risks            string `json:"risks" binding:"required"`
	ExpectedReturn   string `json:"expected_return" binding:"required,max=50"`
	ExitPlan         string `json:"exit_plan" binding:"required,max=100"`
	MarketConditions string `json:"market_conditions" binding:"required"`
	EmotionalState   string `json:"emotional_state" binding:"required,max=100"`
}

// AddReviewLog handles appending a manually written review to a journal.
// @Summary     Add review log
// @Description Append a manually submitted review to a journal
// @Tags        reviews
// @Accept      json
// @Produce     json
// @Param       id      path int              true "Journal ID"
// @Param       request body ReviewLogRequest true "Review content"
// @Success     201 {object} map[string]models.AIReviewLog "Review log created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Journal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journals/{id}/reviews [post]
func (h *ReviewHandler) AddReviewLog(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ReviewLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	log, err := h.reviewService.AddReviewLog(id, req.ReviewContent)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review_log": log})
}

// GenerateReview handles generating a review via the external model and
// persisting it. Generation failures surface as errors; nothing is
// written unless the call succeeded.
// @Summary     Generate review
// @Description Generate an AI review for a journal and persist it as a new log
// @Tags        reviews
// @Accept      json
// @Produce     json
// @Param       id      path int                   true "Journal ID"
// @Param       request body GenerateReviewRequest true "Journal fields for the prompt"
// @Success     201 {object} map[string]models.AIReviewLog "Review log created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Journal not found"
// @Failure     502 {object} ErrorResponse "Upstream generation failed"
// @Failure     503 {object} ErrorResponse "Generation not configured"
// @Router      /journals/{id}/reviews/generate [post]
func (h *ReviewHandler) GenerateReview(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req GenerateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	log, err := h.reviewService.GenerateReview(c.Request.Context(), id, services.ReviewInput{
		Date:             req.Date,
		Asset:            req.Asset,
		Amount:           req.Amount,
		Price:            req.Price,
		Strategy:         req.Strategy,
		Reasons:          req.Reasons,
		Risks:            req.Risks,
		ExpectedReturn:   req.ExpectedReturn,
		ExitPlan:         req.ExitPlan,
		MarketConditions: req.MarketConditions,
		EmotionalState:   req.EmotionalState,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review_log": log})
}
