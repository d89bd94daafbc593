package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/staffdesk/employee-api/internal/core/domain"
	"github.com/staffdesk/employee-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists dequeued entries.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single audit entry.
func (s *auditService) Process(ctx context.Context, entry domain.AuditEntry) error {
	if err := s.repo.Insert(ctx, &entry); err != nil {
		s.log.Error().Err(err).
			Str("employee_id", entry.EmployeeID).
			Str("action", string(entry.Action)).
			Msg("failed to persist audit entry")
		return err
	}

	s.log.Debug().
		Str("employee_id", entry.EmployeeID).
		Str("action", string(entry.Action)).
		Str("actor", entry.Actor).
		Msg("audit entry persisted")
	return nil
}
