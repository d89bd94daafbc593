package ports

import (
	"context"

	"github.com/staffdesk/employee-api/internal/core/domain"
)

// IdentityRepository is the credential store: the single owner of registered
// identities. Implementations must make Create atomic with the uniqueness
// check so concurrent registrations of the same email cannot both succeed.
type IdentityRepository interface {
	Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
}
