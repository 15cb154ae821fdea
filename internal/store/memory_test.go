package store

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remessas/screening-service/internal/domain"
)

func tx(sender string, amount int64, ts time.Time) domain.StoredTransaction {
	return domain.StoredTransaction{
		TransactionID:      uuid.New(),
		SenderName:         sender,
		RecipientName:      "Rosa Delgado",
		Amount:             decimal.NewFromInt(amount),
		Currency:           "USD",
		DestinationCountry: "MX",
		Timestamp:          ts,
		Decision:           domain.DecisionApprove,
	}
}

func TestQueryBySenderNormalizesIdentity(t *testing.T) {
	st := NewMemoryStore()
	now := time.Now().UTC()

	st.Append(tx("Maria Garcia", 100, now))
	st.Append(tx(" maria  garcia ", 200, now))

	// Both spellings collide to one bucket, queryable by either.
	assert.Len(t, st.QueryBySender("MARIA GARCIA", time.Time{}), 2)
	assert.Len(t, st.QueryBySender("maria garcia", time.Time{}), 2)
}

func TestQueryBySenderSinceFilter(t *testing.T) {
	st := NewMemoryStore()
	now := time.Now().UTC()

	st.Append(tx("Maria Garcia", 100, now.Add(-2*time.Hour)))
	st.Append(tx("Maria Garcia", 200, now.Add(-30*time.Minute)))
	st.Append(tx("Maria Garcia", 300, now))

	recent := st.QueryBySender("Maria Garcia", now.Add(-time.Hour))
	require.Len(t, recent, 2)
	for _, r := range recent {
		assert.False(t, r.Timestamp.Before(now.Add(-time.Hour)))
	}
}

func TestQueryBySenderUnknownSender(t *testing.T) {
	st := NewMemoryStore()
	assert.Empty(t, st.QueryBySender("Nobody Here", time.Time{}))
}

func TestQueryBySenderIdempotent(t *testing.T) {
	st := NewMemoryStore()
	now := time.Now().UTC()
	st.Append(tx("Maria Garcia", 100, now))
	st.Append(tx("Maria Garcia", 200, now))

	first := st.QueryBySender("Maria Garcia", time.Time{})
	second := st.QueryBySender("Maria Garcia", time.Time{})
	assert.Equal(t, first, second)
}

func TestQueryAllRangeAndOrder(t *testing.T) {
	st := NewMemoryStore()
	now := time.Now().UTC()

	st.Append(tx("Maria Garcia", 100, now.Add(-3*time.Hour)))
	st.Append(tx("Pedro Alvarez", 200, now.Add(-1*time.Hour)))
	st.Append(tx("Li Wei", 300, now.Add(-2*time.Hour)))

	all := st.QueryAll(time.Time{}, time.Time{})
	require.Len(t, all, 3)
	assert.True(t, all[0].Timestamp.Before(all[1].Timestamp))
	assert.True(t, all[1].Timestamp.Before(all[2].Timestamp))

	windowed := st.QueryAll(now.Add(-150*time.Minute), now.Add(-30*time.Minute))
	require.Len(t, windowed, 2)
	assert.Equal(t, "Li Wei", windowed[0].SenderName)
	assert.Equal(t, "Pedro Alvarez", windowed[1].SenderName)
}

func TestAuditQueryFilters(t *testing.T) {
	st := NewMemoryStore()
	now := time.Now().UTC()

	first := uuid.New()
	second := uuid.New()
	st.AppendAudit(domain.AuditEntry{TransactionID: first, Timestamp: now.Add(-2 * time.Hour), Decision: domain.DecisionApprove})
	st.AppendAudit(domain.AuditEntry{TransactionID: second, Timestamp: now, Decision: domain.DecisionDeny})

	byID := st.QueryAudit(first, time.Time{}, time.Time{})
	require.Len(t, byID, 1)
	assert.Equal(t, first, byID[0].TransactionID)

	byRange := st.QueryAudit(uuid.Nil, now.Add(-time.Hour), time.Time{})
	require.Len(t, byRange, 1)
	assert.Equal(t, second, byRange[0].TransactionID)

	assert.Len(t, st.QueryAudit(uuid.Nil, time.Time{}, time.Time{}), 2)
}

func TestConcurrentAppendsAndQueries(t *testing.T) {
	st := NewMemoryStore()
	now := time.Now().UTC()

	const writers = 20
	const perWriter = 25

	var wg sync.WaitGroup
	wg.Add(writers * 2)
	for w := 0; w < writers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				st.Append(tx("Maria Garcia", int64(w*100+i), now))
			}
		}(w)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				st.QueryBySender("Maria Garcia", time.Time{})
				st.QueryAll(time.Time{}, time.Time{})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, st.Len())
	assert.Len(t, st.QueryBySender("Maria Garcia", time.Time{}), writers*perWriter)
}
