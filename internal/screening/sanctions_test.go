package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remessas/screening-service/internal/domain"
)

var sanctionsList = []string{"Mohammad Ahmad", "Viktor Petrov"}

func TestCheckSanctionsSenderMatch(t *testing.T) {
	outcome := CheckSanctions("Mohammad Ahmad", "Rosa Delgado", sanctionsList, 85)

	assert.Equal(t, 100, outcome.ScoreDelta)
	assert.Equal(t, []string{domain.TagSanctionsMatch}, outcome.MatchedRules)
	require.Len(t, outcome.Reasons, 1)
	assert.Contains(t, outcome.Reasons[0], "Sender")
	assert.Contains(t, outcome.Reasons[0], "Mohammad Ahmad")
	assert.Contains(t, outcome.Reasons[0], "100%")
}

func TestCheckSanctionsRecipientMatch(t *testing.T) {
	outcome := CheckSanctions("Maria Garcia", "Viktor Petrov", sanctionsList, 85)

	assert.Equal(t, 100, outcome.ScoreDelta)
	require.Len(t, outcome.Reasons, 1)
	assert.Contains(t, outcome.Reasons[0], "Recipient")
	assert.Contains(t, outcome.Reasons[0], "Viktor Petrov")
}

func TestCheckSanctionsBothPartiesTagOnce(t *testing.T) {
	outcome := CheckSanctions("Mohammad Ahmad", "Viktor Petrov", sanctionsList, 85)

	// One reason per party, but the tag appears exactly once.
	assert.Len(t, outcome.Reasons, 2)
	assert.Equal(t, []string{domain.TagSanctionsMatch}, outcome.MatchedRules)
	assert.Equal(t, 100, outcome.ScoreDelta)
}

func TestCheckSanctionsFuzzyMatch(t *testing.T) {
	outcome := CheckSanctions("Mohammed Ahmed", "Rosa Delgado", sanctionsList, 85)

	assert.Equal(t, 100, outcome.ScoreDelta)
	require.Len(t, outcome.Reasons, 1)
	assert.Contains(t, outcome.Reasons[0], "85%")
}

func TestCheckSanctionsNoMatch(t *testing.T) {
	outcome := CheckSanctions("Maria Garcia", "Rosa Delgado", sanctionsList, 85)

	assert.Equal(t, 0, outcome.ScoreDelta)
	assert.Empty(t, outcome.Reasons)
	assert.Empty(t, outcome.MatchedRules)
	assert.False(t, outcome.Triggered())
}

func TestCheckSanctionsEmptyList(t *testing.T) {
	outcome := CheckSanctions("Mohammad Ahmad", "Viktor Petrov", nil, 85)

	assert.Equal(t, 0, outcome.ScoreDelta)
	assert.False(t, outcome.Triggered())
}
