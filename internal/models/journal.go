// Package models defines the persisted entities. Journal is the aggregate
// root; sell records and AI review logs belong to exactly one journal and
// cascade-delete with it.
package models

// Journal represents one investment decision record. Numeric-looking
// fields (amount, price, expected_return) are stored as strings exactly
// as entered; the service never does arithmetic on them.
type Journal struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	Date             string  `gorm:"size:20" json:"date"`
	Asset            string  `gorm:"size:100" json:"asset"`
	Amount           string  `gorm:"size:50" json:"amount"`
	Price            string  `gorm:"size:50" json:"price"`
	Strategy         string  `gorm:"size:50" json:"strategy"`
	Reasons          string  `gorm:"type:text" json:"reasons"`
	Risks            string  `gorm:"type:text" json:"risks"`
	ExpectedReturn   string  `gorm:"size:50" json:"expected_return"`
	ExitPlan         string  `gorm:"size:100" json:"exit_plan"`
	MarketConditions string  `gorm:"type:text" json:"market_conditions"`
	EmotionalState   string  `gorm:"size:100" json:"emotional_state"`
	Archived         bool    `gorm:"not null;default:false" json:"archived"`
	ExitDate         *string `gorm:"size:20" json:"exit_date"`

	// Relationships
	SellRecords  []SellRecord  `gorm:"foreignKey:JournalID;constraint:OnDelete:CASCADE" json:"sell_records"`
	AIReviewLogs []AIReviewLog `gorm:"foreignKey:JournalID;constraint:OnDelete:CASCADE" json:"ai_review_logs"`
}
