package screening

import (
	"fmt"
	"strings"

	"github.com/remessas/screening-service/internal/domain"
)

const countryRiskScore = 50

// CheckCountry tests the destination country against the high-risk
// jurisdiction set. Membership is exact and case-insensitive on ISO
// 3166-1 alpha-2 codes; there are no partial-risk tiers.
func CheckCountry(destinationCountry string, highRisk map[string]struct{}) domain.RuleOutcome {
	code := strings.ToUpper(strings.TrimSpace(destinationCountry))

	if _, found := highRisk[code]; !found {
		return domain.RuleOutcome{}
	}

	return domain.RuleOutcome{
		ScoreDelta: countryRiskScore,
		Reasons: []string{
			fmt.Sprintf("Destination country '%s' is a high-risk jurisdiction", code),
		},
		MatchedRules: []string{domain.TagHighRiskCountry},
	}
}
