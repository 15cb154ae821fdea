package screening

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/remessas/screening-service/internal/domain"
)

const structuringScore = 50

// CheckStructuring detects splitting one large transfer into several
// similarly sized smaller ones to stay under reporting thresholds, e.g.
// five transfers of 500 in half an hour instead of one of 2500.
//
// Among the sender's transactions in the trailing window (plus the current
// amount), it counts how many fall within the variance fraction of the
// current amount: |other - amount| <= amount * variance. The rule fires
// when that count, including the current request, reaches minCount.
func CheckStructuring(senderName string, amount decimal.Decimal, ts time.Time, history HistoryReader, windowMinutes, minCount int, variance decimal.Decimal) domain.RuleOutcome {
	windowStart := ts.Add(-time.Duration(windowMinutes) * time.Minute)
	tolerance := amount.Mul(variance)

	count := 1 // the current amount belongs to its own cluster
	for _, tx := range history.QueryBySender(senderName, windowStart) {
		if tx.Timestamp.After(ts) {
			continue
		}
		if tx.Amount.Sub(amount).Abs().LessThanOrEqual(tolerance) {
			count++
		}
	}

	if count < minCount {
		return domain.RuleOutcome{}
	}

	return domain.RuleOutcome{
		ScoreDelta: structuringScore,
		Reasons: []string{
			fmt.Sprintf("Potential structuring detected: %d transactions of similar amounts (~%s) within %d minutes",
				count, amount.StringFixed(2), windowMinutes),
		},
		MatchedRules: []string{domain.TagStructuring},
	}
}
