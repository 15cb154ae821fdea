package screening

import (
	"github.com/remessas/screening-service/internal/domain"
)

const (
	maxRiskScore = 100
	reviewCutoff = 50
)

// Aggregate combines the ordered rule outcomes into the final risk score
// and decision. It is a pure function of its input: identical outcomes
// always yield the identical decision.
//
// Score deltas are summed and clamped to 100. Decision priority:
//  1. any SANCTIONS_MATCH tag -> DENY, regardless of numeric score
//  2. score >= 50            -> REVIEW
//  3. otherwise              -> APPROVE
//
// Reasons keep rule evaluation order. Matched rule tags keep the same
// order with duplicates removed.
func Aggregate(outcomes []domain.RuleOutcome) (int, domain.Decision, []string, []string) {
	score := 0
	reasons := []string{}
	matched := []string{}
	seen := make(map[string]struct{})

	for _, outcome := range outcomes {
		score += outcome.ScoreDelta
		reasons = append(reasons, outcome.Reasons...)
		for _, tag := range outcome.MatchedRules {
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			matched = append(matched, tag)
		}
	}

	if score > maxRiskScore {
		score = maxRiskScore
	}

	decision := domain.DecisionApprove
	if _, hit := seen[domain.TagSanctionsMatch]; hit {
		decision = domain.DecisionDeny
	} else if score >= reviewCutoff {
		decision = domain.DecisionReview
	}

	return score, decision, reasons, matched
}
