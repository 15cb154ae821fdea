package domain

import (
	"github.com/google/uuid"
)

// Decision represents the outcome of screening a transaction
type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReview  Decision = "REVIEW"
	DecisionDeny    Decision = "DENY"
)

// Rule tags identify which compliance rules a screening matched
const (
	TagSanctionsMatch   = "SANCTIONS_MATCH"
	TagHighRiskCountry  = "HIGH_RISK_COUNTRY"
	TagVelocityExceeded = "VELOCITY_EXCEEDED"
	TagLargeAmount      = "LARGE_AMOUNT"
	TagStructuring      = "STRUCTURING_DETECTED"
)

// RuleOutcome is the contribution of a single compliance rule to the
// overall risk assessment. Produced once per evaluation, never mutated.
type RuleOutcome struct {
	ScoreDelta   int      `json:"score_delta"`
	Reasons      []string `json:"reasons"`
	MatchedRules []string `json:"matched_rules"`
}

// Triggered reports whether the rule fired.
func (o RuleOutcome) Triggered() bool {
	return len(o.MatchedRules) > 0
}

// ScreeningResult is the final decision for a single screened transaction.
// Reasons keep rule evaluation order; matched rule tags are deduplicated
// with order preserved.
type ScreeningResult struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	Decision      Decision  `json:"decision"`
	RiskScore     int       `json:"risk_score"` // 0-100, clamped
	Reasons       []string  `json:"reasons"`
	MatchedRules  []string  `json:"matched_rules"`
}

// IsApproved returns true if the transaction may proceed.
func (r *ScreeningResult) IsApproved() bool {
	return r.Decision == DecisionApprove
}

// IsDenied returns true if the transaction was blocked.
func (r *ScreeningResult) IsDenied() bool {
	return r.Decision == DecisionDeny
}

// NeedsReview returns true if manual compliance review is required.
func (r *ScreeningResult) NeedsReview() bool {
	return r.Decision == DecisionReview
}

// BatchSummary aggregates a batch screening run.
type BatchSummary struct {
	Total             int      `json:"total"`
	Approved          int      `json:"approved"`
	Denied            int      `json:"denied"`
	Review            int      `json:"review"`
	CommonRiskFactors []string `json:"common_risk_factors"`
}

// BatchResult is the outcome of screening a batch of transactions.
type BatchResult struct {
	Results []ScreeningResult `json:"results"`
	Summary BatchSummary      `json:"summary"`
}
