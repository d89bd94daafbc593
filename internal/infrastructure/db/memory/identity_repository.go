// Package memory provides mutex-guarded in-process implementations of the
// persistence ports. It backs STORAGE_DRIVER=memory for local development
// and is the storage used by the service-level tests.
package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/staffdesk/employee-api/internal/core/domain"
)

// IdentityRepository is a keyed store mapping email to identity. All access
// goes through a single mutex, so the duplicate check and the insert are one
// atomic step: two concurrent registrations of the same email cannot both
// succeed.
type IdentityRepository struct {
	mu         sync.Mutex
	byEmail    map[string]*domain.Identity
	nextSerial int
}

func NewIdentityRepository() *IdentityRepository {
	return &IdentityRepository{byEmail: make(map[string]*domain.Identity)}
}

func (r *IdentityRepository) Create(_ context.Context, identity *domain.Identity) (*domain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[identity.Email]; exists {
		return nil, domain.ErrDuplicateIdentity
	}

	r.nextSerial++
	stored := cloneIdentity(identity)
	stored.ID = strconv.Itoa(r.nextSerial)
	r.byEmail[stored.Email] = stored

	return cloneIdentity(stored), nil
}

func (r *IdentityRepository) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	identity, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	return cloneIdentity(identity), nil
}

// cloneIdentity copies records across the lock boundary so callers never
// share memory with the store.
func cloneIdentity(i *domain.Identity) *domain.Identity {
	clone := *i
	return &clone
}
