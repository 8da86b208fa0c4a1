package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/services"
)

// JournalHandler handles journal-related requests.
type JournalHandler struct {
	journalService services.JournalServicer
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(journalService services.JournalServicer) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// SellRecordRequest represents one sell record submitted with a journal.
type SellRecordRequest struct {
	Date   string `json:"date" binding:"required,trade_date"`
	Price  string `json:"price" binding:"required,max=50"`
	Amount string `json:"amount" binding:"required,max=50"`
	Reason string `json:"reason" binding:"required"`
}

// JournalRequest represents the request payload for creating or updating
// a journal. Updates replace every field; there is no partial patch.
type JournalRequest struct {
	Date             string              `json:"date" binding:"required,trade_date"`
	Asset            string              `json:"asset" binding:"required,max=100"`
	Amount           string              `json:"amount" binding:"required,max=50"`
	Price            string              `json:"price" binding:"required,max=50"`
	Strategy         string              `json:"strategy" binding:"required,max=50"`
	Reasons          string              `json:"reasons" binding:"required"`
	Risks            string              `json:"risks" binding:"required"`
	ExpectedReturn   string              `json:"expected_return" binding:"required,max=50"`
	ExitPlan         string              `json:"exit_plan" binding:"required,max=100"`
	MarketConditions string              `json:"market_conditions" binding:"required"`
	EmotionalState   string              `json:"emotional_state" binding:"required,max=100"`
	Archived         bool                `json:"archived"`
	ExitDate         *string             `json:"exit_date" binding:"omitempty,trade_date"`
	SellRecords      []SellRecordRequest `json:"sell_records" binding:"omitempty,dive"`
}

func (r *JournalRequest) toInput() services.JournalInput {
	input := services.JournalInput{
		Date:             r.Date,
		Asset:            r.Asset,
		Amount:           r.Amount,
		Price:            r.Price,
		Strategy:         r.Strategy,
		Reasons:          r.Reasons,
		Risks:            r.Risks,
		ExpectedReturn:   r.ExpectedReturn,
		ExitPlan:         r.ExitPlan,
		MarketConditions: r.MarketConditions,
		EmotionalState:   r.EmotionalState,
		Archived:         r.Archived,
		ExitDate:         r.ExitDate,
	}
	for _, sr := range r.SellRecords {
		input.SellRecords = append(input.SellRecords, services.SellRecordInput{
			Date:   sr.Date,
			Price:  sr.Price,
			Amount: sr.Amount,
			Reason: sr.Reason,
		})
	}
	return input
}

// ListJournals handles listing journals.
// @Summary     List journals
// @Description List journals newest-first with sell records and review logs embedded
// @Tags        journals
// @Accept      json
// @Produce     json
// @Param       include_archived query bool false "Include archived journals (default false)"
// @Success     200 {object} map[string][]models.Journal "Journals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journals [get]
func (h *JournalHandler) ListJournals(c *gin.Context) {
	includeArchived, err := strconv.ParseBool(c.DefaultQuery("include_archived", "false"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid include_archived"))
		return
	}

	journals, err := h.journalService.ListJournals(includeArchived)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"journals": journals})
}

// ListArchivedJournals handles listing archived journals only.
// @Summary     List archived journals
// @Description List only archived journals, newest-first
// @Tags        journals
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string][]models.Journal "Archived journals"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journals/archived [get]
func (h *JournalHandler) ListArchivedJournals(c *gin.Context) {
	journals, err := h.journalService.ListArchivedJournals()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"journals": journals})
}

// CreateJournal handles creating a journal with its sell records.
// @Summary     Create journal
// @Description Create a journal entry together with its sell records as one atomic unit
// @Tags        journals
// @Accept      json
// @Produce     json
// @Param       request body JournalRequest true "Journal details"
// @Success     201 {object} map[string]models.Journal "Journal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journals [post]
func (h *JournalHandler) CreateJournal(c *gin.Context) {
	var req JournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	journal, err := h.journalService.CreateJournal(req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"journal": journal})
}

// UpdateJournal handles replacing a journal and its sell-record set.
// @Summary     Update journal
// @Description Replace all journal fields and the full sell-record set
// @Tags        journals
// @Accept      json
// @Produce     json
// @Param       id      path int            true "Journal ID"
// @Param       request body JournalRequest true "Journal details"
// @Success     200 {object} map[string]models.Journal "Journal updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Journal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journals/{id} [put]
func (h *JournalHandler) UpdateJournal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req JournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	journal, err := h.journalService.UpdateJournal(id, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"journal": journal})
}

// ArchiveJournal handles archiving a journal. Archiving replaces physical
// deletion, so the route keeps the DELETE verb.
// @Summary     Archive journal
// @Description Flag a journal as archived; the row and its children remain readable
// @Tags        journals
// @Accept      json
// @Produce     json
// @Param       id path int true "Journal ID"
// @Success     200 {object} map[string]interface{} "Acknowledgement"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Journal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journals/{id} [delete]
func (h *JournalHandler) ArchiveJournal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.journalService.ArchiveJournal(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Journal archived"})
}

// UnarchiveJournal handles restoring an archived journal.
// @Summary     Unarchive journal
// @Description Clear the archived flag on a journal
// @Tags        journals
// @Accept      json
// @Produce     json
// @Param       id path int true "Journal ID"
// @Success     200 {object} map[string]interface{} "Acknowledgement"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Journal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journals/{id}/unarchive [post]
func (h *JournalHandler) UnarchiveJournal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.journalService.UnarchiveJournal(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Journal unarchived"})
}
