package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remessas/screening-service/internal/domain"
)

func outcome(delta int, tags ...string) domain.RuleOutcome {
	reasons := make([]string, 0, len(tags))
	for _, tag := range tags {
		reasons = append(reasons, "reason for "+tag)
	}
	return domain.RuleOutcome{ScoreDelta: delta, Reasons: reasons, MatchedRules: tags}
}

func TestAggregateAllClean(t *testing.T) {
	score, decision, reasons, matched := Aggregate([]domain.RuleOutcome{{}, {}, {}, {}, {}})

	assert.Equal(t, 0, score)
	assert.Equal(t, domain.DecisionApprove, decision)
	assert.Empty(t, reasons)
	assert.Empty(t, matched)
}

func TestAggregateSanctionsAlwaysDenies(t *testing.T) {
	score, decision, _, matched := Aggregate([]domain.RuleOutcome{
		outcome(100, domain.TagSanctionsMatch),
	})

	assert.Equal(t, 100, score)
	assert.Equal(t, domain.DecisionDeny, decision)
	assert.Contains(t, matched, domain.TagSanctionsMatch)
}

func TestAggregateReviewAtCutoff(t *testing.T) {
	score, decision, _, _ := Aggregate([]domain.RuleOutcome{
		outcome(50, domain.TagLargeAmount),
	})

	assert.Equal(t, 50, score)
	assert.Equal(t, domain.DecisionReview, decision)
}

func TestAggregateApproveBelowCutoff(t *testing.T) {
	score, decision, _, _ := Aggregate([]domain.RuleOutcome{
		outcome(49, domain.TagLargeAmount),
	})

	assert.Equal(t, 49, score)
	assert.Equal(t, domain.DecisionApprove, decision)
}

func TestAggregateClampsAt100(t *testing.T) {
	score, decision, _, _ := Aggregate([]domain.RuleOutcome{
		outcome(100, domain.TagSanctionsMatch),
		outcome(50, domain.TagHighRiskCountry),
		outcome(50, domain.TagLargeAmount),
	})

	assert.Equal(t, 100, score)
	assert.Equal(t, domain.DecisionDeny, decision)
}

func TestAggregateKeepsRuleOrder(t *testing.T) {
	_, _, reasons, matched := Aggregate([]domain.RuleOutcome{
		outcome(50, domain.TagHighRiskCountry),
		outcome(50, domain.TagVelocityExceeded),
		outcome(50, domain.TagLargeAmount),
	})

	assert.Equal(t, []string{
		"reason for " + domain.TagHighRiskCountry,
		"reason for " + domain.TagVelocityExceeded,
		"reason for " + domain.TagLargeAmount,
	}, reasons)
	assert.Equal(t, []string{
		domain.TagHighRiskCountry,
		domain.TagVelocityExceeded,
		domain.TagLargeAmount,
	}, matched)
}

func TestAggregateDeduplicatesTags(t *testing.T) {
	_, _, _, matched := Aggregate([]domain.RuleOutcome{
		outcome(50, domain.TagLargeAmount),
		outcome(50, domain.TagLargeAmount),
	})

	assert.Equal(t, []string{domain.TagLargeAmount}, matched)
}

func TestAggregateScoreMonotonic(t *testing.T) {
	base := []domain.RuleOutcome{outcome(30, domain.TagHighRiskCountry)}
	baseScore, _, _, _ := Aggregate(base)

	withExtra, _, _, _ := Aggregate(append(base, outcome(50, domain.TagLargeAmount)))
	assert.GreaterOrEqual(t, withExtra, baseScore)
}

func TestAggregateDeterministic(t *testing.T) {
	outcomes := []domain.RuleOutcome{
		outcome(50, domain.TagHighRiskCountry),
		outcome(50, domain.TagLargeAmount),
	}

	s1, d1, r1, m1 := Aggregate(outcomes)
	s2, d2, r2, m2 := Aggregate(outcomes)

	assert.Equal(t, s1, s2)
	assert.Equal(t, d1, d2)
	assert.Equal(t, r1, r2)
	assert.Equal(t, m1, m2)
}
