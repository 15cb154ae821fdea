package screening

import (
	"fmt"
	"time"

	"github.com/remessas/screening-service/internal/domain"
)

const velocityScore = 50

// HistoryReader is the read-only slice of the history store the
// time-windowed rules depend on.
type HistoryReader interface {
	QueryBySender(identity string, since time.Time) []domain.StoredTransaction
}

// CheckVelocity flags unusual transaction frequency from one sender.
// It counts the sender's stored transactions whose embedded timestamp falls
// within [ts - window, ts], plus one for the in-flight request, which is
// not yet in history at evaluation time. The rule fires when that count
// strictly exceeds the threshold.
//
// Filtering is by embedded timestamp, never append order, so requests that
// arrive out of order are still windowed correctly.
func CheckVelocity(senderName string, ts time.Time, history HistoryReader, windowMinutes, threshold int) domain.RuleOutcome {
	windowStart := ts.Add(-time.Duration(windowMinutes) * time.Minute)

	count := 1 // the request being screened
	for _, tx := range history.QueryBySender(senderName, windowStart) {
		if tx.Timestamp.After(ts) {
			continue
		}
		count++
	}

	if count <= threshold {
		return domain.RuleOutcome{}
	}

	return domain.RuleOutcome{
		ScoreDelta: velocityScore,
		Reasons: []string{
			fmt.Sprintf("Sender has %d transactions in the last %d minutes (threshold: %d)",
				count, windowMinutes, threshold),
		},
		MatchedRules: []string{domain.TagVelocityExceeded},
	}
}
