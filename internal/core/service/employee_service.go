package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/staffdesk/employee-api/internal/core/domain"
	"github.com/staffdesk/employee-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// AuditDispatcher is the interface the registry uses to enqueue audit events.
// Enqueueing is fire-and-forget; audit failures never fail the mutation.
type AuditDispatcher interface {
	Enqueue(entry domain.AuditEntry)
}

// EmployeeService implements the employee registry use-cases.
type EmployeeService struct {
	repo  ports.EmployeeRepository
	audit AuditDispatcher
	log   zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, audit AuditDispatcher, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, audit: audit, log: log}
}

// Create stores a new employee record and returns the registry-assigned id.
func (s *EmployeeService) Create(ctx context.Context, input ports.EmployeeInput) (string, error) {
	now := time.Now().UTC()
	employee := &domain.Employee{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.repo.Create(ctx, employee)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create employee")
		return "", err
	}

	s.log.Info().Str("employee_id", id).Str("actor", input.Actor).Msg("employee created")
	s.audit.Enqueue(domain.AuditEntry{
		EmployeeID: id,
		Action:     domain.AuditEmployeeCreated,
		Actor:      input.Actor,
		Timestamp:  now,
	})

	return id, nil
}

// Get returns the employee with the given id.
func (s *EmployeeService) Get(ctx context.Context, id string) (*ports.EmployeeView, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toView(employee)
	return &view, nil
}

// Update replaces first_name/last_name/email for the given id. The replace is
// atomic: readers observe either the old record or the new one, never a mix.
func (s *EmployeeService) Update(ctx context.Context, id string, input ports.EmployeeInput) error {
	now := time.Now().UTC()
	employee := &domain.Employee{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		UpdatedAt: now,
	}

	if err := s.repo.Replace(ctx, id, employee); err != nil {
		return err
	}

	s.log.Info().Str("employee_id", id).Str("actor", input.Actor).Msg("employee updated")
	s.audit.Enqueue(domain.AuditEntry{
		EmployeeID: id,
		Action:     domain.AuditEmployeeUpdated,
		Actor:      input.Actor,
		Timestamp:  now,
	})

	return nil
}

// Delete removes the employee with the given id.
func (s *EmployeeService) Delete(ctx context.Context, id string, actor string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("employee_id", id).Str("actor", actor).Msg("employee deleted")
	s.audit.Enqueue(domain.AuditEntry{
		EmployeeID: id,
		Action:     domain.AuditEmployeeDeleted,
		Actor:      actor,
		Timestamp:  time.Now().UTC(),
	})

	return nil
}

// List returns a page of employees.
func (s *EmployeeService) List(ctx context.Context, input ports.ListEmployeesInput) (*ports.ListEmployeesResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListEmployeesFilter{
		Search: input.Search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	views := make([]ports.EmployeeView, 0, len(items))
	for _, e := range items {
		views = append(views, toView(e))
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListEmployeesResult{
		Items:      views,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func toView(e *domain.Employee) ports.EmployeeView {
	return ports.EmployeeView{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
