package screening

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/remessas/screening-service/internal/domain"
)

const largeAmountScore = 50

// CheckAmount flags transfers strictly above the large-amount threshold.
// An amount exactly at the threshold does not trigger.
func CheckAmount(amount, threshold decimal.Decimal) domain.RuleOutcome {
	if amount.LessThanOrEqual(threshold) {
		return domain.RuleOutcome{}
	}

	return domain.RuleOutcome{
		ScoreDelta: largeAmountScore,
		Reasons: []string{
			fmt.Sprintf("Transaction amount %s exceeds threshold of %s",
				amount.StringFixed(2), threshold.StringFixed(2)),
		},
		MatchedRules: []string{domain.TagLargeAmount},
	}
}
