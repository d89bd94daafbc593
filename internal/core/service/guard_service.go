package service

import (
	"context"

	"github.com/staffdesk/employee-api/internal/core/domain"
	"github.com/staffdesk/employee-api/internal/core/ports"
)

// GuardService authorizes operations: it resolves the presented token to a
// principal and checks the role against the required capability. Role
// resolution lives here so the transport layer stays free of access logic.
type GuardService struct {
	auth ports.AuthService
}

func NewGuardService(auth ports.AuthService) *GuardService {
	return &GuardService{auth: auth}
}

// Authorize returns the principal bound to token when its role grants cap.
// Validation failures are translated to ErrUnauthenticated, capability
// mismatches to ErrForbidden.
func (g *GuardService) Authorize(ctx context.Context, token string, cap domain.Capability) (*domain.Principal, error) {
	principal, err := g.auth.Validate(ctx, token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	if !principal.Role.Grants(cap) {
		return nil, domain.ErrForbidden
	}

	return principal, nil
}
