package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/staffdesk/employee-api/internal/core/domain"
	"github.com/staffdesk/employee-api/internal/core/ports"
)

// EmployeeRepository is a keyed store mapping id to employee record. Ids are
// uuids assigned under the lock, so concurrent creates always receive
// distinct ids, and Replace swaps the whole record in one critical section.
type EmployeeRepository struct {
	mu   sync.RWMutex
	byID map[string]*domain.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{byID: make(map[string]*domain.Employee)}
}

func (r *EmployeeRepository) Create(_ context.Context, e *domain.Employee) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneEmployee(e)
	stored.ID = uuid.NewString()
	r.byID[stored.ID] = stored

	return stored.ID, nil
}

func (r *EmployeeRepository) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return cloneEmployee(e), nil
}

func (r *EmployeeRepository) Replace(_ context.Context, id string, e *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return domain.ErrEmployeeNotFound
	}

	replaced := cloneEmployee(e)
	replaced.ID = id
	replaced.CreatedAt = current.CreatedAt
	r.byID[id] = replaced
	return nil
}

func (r *EmployeeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *EmployeeRepository) List(_ context.Context, filter ports.ListEmployeesFilter) ([]*domain.Employee, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*domain.Employee, 0, len(r.byID))
	for _, e := range r.byID {
		if matchesSearch(e, filter.Search) {
			matched = append(matched, e)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]*domain.Employee, 0, end-start)
	for _, e := range matched[start:end] {
		page = append(page, cloneEmployee(e))
	}
	return page, total, nil
}

func matchesSearch(e *domain.Employee, search string) bool {
	if search == "" {
		return true
	}
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(e.FirstName), s) ||
		strings.Contains(strings.ToLower(e.LastName), s) ||
		strings.Contains(strings.ToLower(e.Email), s)
}

func cloneEmployee(e *domain.Employee) *domain.Employee {
	clone := *e
	return &clone
}
