package screening

import (
	"fmt"

	"github.com/remessas/screening-service/internal/domain"
)

// A sanctions hit always forces denial regardless of other rules.
const sanctionsScore = 100

// CheckSanctions screens both the sender and the recipient against the
// sanctioned-entity list using fuzzy name matching. Fuzzy matching catches
// transliteration variants like "Mohammad Ahmad" vs "Mohammed Ahmed",
// common in cross-border remittances. A match on either party triggers the
// rule; the tag is added once even when both parties match.
func CheckSanctions(senderName, recipientName string, sanctionsList []string, threshold int) domain.RuleOutcome {
	parties := []struct {
		role string
		name string
	}{
		{"Sender", senderName},
		{"Recipient", recipientName},
	}

	var reasons []string
	for _, p := range parties {
		match := MatchName(p.name, sanctionsList, threshold)
		if !match.Matched {
			continue
		}
		reasons = append(reasons, fmt.Sprintf(
			"%s '%s' matches sanctioned entity '%s' (similarity: %d%%)",
			p.role, p.name, match.MatchedName, match.Similarity,
		))
	}

	if len(reasons) == 0 {
		return domain.RuleOutcome{}
	}

	return domain.RuleOutcome{
		ScoreDelta:   sanctionsScore,
		Reasons:      reasons,
		MatchedRules: []string{domain.TagSanctionsMatch},
	}
}
