package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/remessas/screening-service/internal/domain"
)

// MemoryStore is the in-memory history store backing velocity and
// structuring lookups plus the audit trail. Transactions are indexed by
// normalized sender name; entries are append-only and never mutated.
//
// A single RWMutex serializes appends while allowing concurrent range
// queries from simultaneous screening requests. Appends are linearized,
// but log order carries no guarantee about embedded timestamps: callers
// computing time windows must filter by StoredTransaction.Timestamp, not
// arrival order.
type MemoryStore struct {
	mu       sync.RWMutex
	bySender map[string][]domain.StoredTransaction
	audit    []domain.AuditEntry
}

// NewMemoryStore creates an empty history store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bySender: make(map[string][]domain.StoredTransaction),
	}
}

// Append stores a screened transaction under its normalized sender identity.
func (s *MemoryStore) Append(tx domain.StoredTransaction) {
	key := domain.NormalizeName(tx.SenderName)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bySender[key] = append(s.bySender[key], tx)
}

// AppendAudit records a full audit trail entry.
func (s *MemoryStore) AppendAudit(entry domain.AuditEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audit = append(s.audit, entry)
}

// QueryBySender returns the sender's transactions with embedded timestamp
// >= since. A zero since means no lower bound. An unknown sender yields an
// empty result, not an error. Results are returned in append order; callers
// needing temporal windows filter by timestamp.
func (s *MemoryStore) QueryBySender(identity string, since time.Time) []domain.StoredTransaction {
	key := domain.NormalizeName(identity)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.StoredTransaction
	for _, tx := range s.bySender[key] {
		if !since.IsZero() && tx.Timestamp.Before(since) {
			continue
		}
		result = append(result, tx)
	}
	return result
}

// QueryAll returns every stored transaction within [from, to], sorted by
// embedded timestamp. Zero bounds are open.
func (s *MemoryStore) QueryAll(from, to time.Time) []domain.StoredTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.StoredTransaction
	for _, txns := range s.bySender {
		for _, tx := range txns {
			if !from.IsZero() && tx.Timestamp.Before(from) {
				continue
			}
			if !to.IsZero() && tx.Timestamp.After(to) {
				continue
			}
			result = append(result, tx)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	return result
}

// QueryAudit returns audit entries filtered by transaction ID and/or time
// range. uuid.Nil and zero times mean no filter on that field.
func (s *MemoryStore) QueryAudit(transactionID uuid.UUID, from, to time.Time) []domain.AuditEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.AuditEntry
	for _, entry := range s.audit {
		if transactionID != uuid.Nil && entry.TransactionID != transactionID {
			continue
		}
		if !from.IsZero() && entry.Timestamp.Before(from) {
			continue
		}
		if !to.IsZero() && entry.Timestamp.After(to) {
			continue
		}
		result = append(result, entry)
	}
	return result
}

// Len returns the total number of stored transactions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, txns := range s.bySender {
		n += len(txns)
	}
	return n
}
