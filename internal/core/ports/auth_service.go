package ports

import (
	"context"

	"github.com/staffdesk/employee-api/internal/core/domain"
)

// AuthService is the token authority: it verifies credentials, issues bearer
// tokens and resolves presented tokens back to a principal.
type AuthService interface {
	Register(ctx context.Context, email, password, role string) (*domain.Identity, error)
	Login(ctx context.Context, email, password string) (string, error)
	// Validate is a pure read path: it never takes store locks and must
	// reject the empty token.
	Validate(ctx context.Context, token string) (*domain.Principal, error)
	Revoke(ctx context.Context, token string) error
}

// Guard grants or denies an operation given a token and the capability the
// operation requires. Token validation failures surface as
// domain.ErrUnauthenticated, capability mismatches as domain.ErrForbidden.
type Guard interface {
	Authorize(ctx context.Context, token string, cap domain.Capability) (*domain.Principal, error)
}
