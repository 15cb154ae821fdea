package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRequest is a single transfer request submitted for screening.
// The boundary layer validates it before it reaches the engine; the engine
// treats it as immutable.
type TransactionRequest struct {
	SenderName         string          `json:"sender_name"`
	RecipientName      string          `json:"recipient_name"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	DestinationCountry string          `json:"destination_country"`
	Timestamp          time.Time       `json:"timestamp"`
}

// StoredTransaction is a screened transaction persisted in the history
// store. Entries are append-only: created once, never mutated or deleted.
// They back both the history queries and the audit trail.
type StoredTransaction struct {
	TransactionID      uuid.UUID       `json:"transaction_id"`
	SenderName         string          `json:"sender_name"`
	RecipientName      string          `json:"recipient_name"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	DestinationCountry string          `json:"destination_country"`
	Timestamp          time.Time       `json:"timestamp"`
	Decision           Decision        `json:"decision"`
	RiskScore          int             `json:"risk_score"`
}

// AuditEntry links a screening request to the decision made for it.
type AuditEntry struct {
	TransactionID uuid.UUID          `json:"transaction_id"`
	Timestamp     time.Time          `json:"timestamp"`
	Request       TransactionRequest `json:"request"`
	Decision      Decision           `json:"decision"`
	RiskScore     int                `json:"risk_score"`
	Reasons       []string           `json:"reasons"`
	MatchedRules  []string           `json:"matched_rules"`
}
