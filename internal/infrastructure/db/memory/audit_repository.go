package memory

import (
	"context"
	"sync"

	"github.com/staffdesk/employee-api/internal/core/domain"
)

// AuditRepository keeps audit entries in memory, in insertion order.
type AuditRepository struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

func (r *AuditRepository) Insert(_ context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, *entry)
	return nil
}

// Entries returns a snapshot of all recorded entries.
func (r *AuditRepository) Entries() []domain.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.AuditEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
