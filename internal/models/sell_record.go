package models

// SellRecord represents a partial or full exit against a journal entry.
// The set of sell records for a journal is replaced wholesale on every
// journal update, so individual rows are never edited in place.
type SellRecord struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	JournalID uint   `gorm:"not null;index" json:"journal_id"`
	Date      string `gorm:"size:20" json:"date"`
	Price     string `gorm:"size:50" json:"price"`
	Amount    string `gorm:"size:50" json:"amount"`
	Reason    string `gorm:"type:text" json:"reason"`
}
