package ports

import (
	"context"
	"time"
)

// EmployeeInput carries the caller-supplied fields of an employee record.
type EmployeeInput struct {
	FirstName string
	LastName  string
	Email     string
	// Actor is the authenticated email performing the operation, used for
	// the audit trail.
	Actor string
}

// EmployeeView is the read model returned by Get and List.
type EmployeeView struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListEmployeesInput carries all parameters for the list endpoint.
type ListEmployeesInput struct {
	Search string
	Page   int
	Limit  int
}

// ListEmployeesResult is returned by List.
type ListEmployeesResult struct {
	Items      []EmployeeView
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// EmployeeService defines use-case operations for the employee registry.
// Authorization happens before these are called; the service assumes the
// caller has already been granted the matching capability.
type EmployeeService interface {
	Create(ctx context.Context, input EmployeeInput) (string, error)
	Get(ctx context.Context, id string) (*EmployeeView, error)
	Update(ctx context.Context, id string, input EmployeeInput) error
	Delete(ctx context.Context, id string, actor string) error
	List(ctx context.Context, input ListEmployeesInput) (*ListEmployeesResult, error)
}
