package ports

import (
	"context"

	"github.com/staffdesk/employee-api/internal/core/domain"
)

// AuditRepository persists registry mutation records.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

// AuditService processes audit events dequeued by the dispatcher.
type AuditService interface {
	Process(ctx context.Context, entry domain.AuditEntry) error
}
