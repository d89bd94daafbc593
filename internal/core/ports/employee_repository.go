package ports

import (
	"context"

	"github.com/staffdesk/employee-api/internal/core/domain"
)

// ListEmployeesFilter carries all query parameters for listing employees.
type ListEmployeesFilter struct {
	Search string // optional: partial match on first_name, last_name or email
	Page   int    // 1-based
	Limit  int    // max rows per page (capped at 100 by the service)
}

// EmployeeRepository defines persistence operations for employee records.
// Implementations must assign ids atomically under concurrent creates and
// replace records atomically so readers never observe a partial write.
type EmployeeRepository interface {
	// Create stores the record and returns the assigned id.
	Create(ctx context.Context, e *domain.Employee) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	// Replace overwrites first_name/last_name/email for the given id.
	Replace(ctx context.Context, id string, e *domain.Employee) error
	Delete(ctx context.Context, id string) error
	// List returns a page of employees matching filter and the total count.
	List(ctx context.Context, filter ListEmployeesFilter) ([]*domain.Employee, int64, error)
}
