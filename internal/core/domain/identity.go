package domain

import "time"

// Role is the access level assigned to an identity at registration time.
type Role string

const (
	RoleRead  Role = "read"
	RoleWrite Role = "write"
	RoleAdmin Role = "admin"
)

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleRead, RoleWrite, RoleAdmin:
		return true
	}
	return false
}

// Capability is a named permission required to perform an operation.
type Capability string

const (
	CapEmployeeRead   Capability = "employee:read"
	CapEmployeeCreate Capability = "employee:create"
	CapEmployeeUpdate Capability = "employee:update"
	CapEmployeeDelete Capability = "employee:delete"
)

// roleGrants maps each role to the capabilities it satisfies.
// read is view-only, write may mutate records, admin additionally deletes.
var roleGrants = map[Role][]Capability{
	RoleRead:  {CapEmployeeRead},
	RoleWrite: {CapEmployeeRead, CapEmployeeCreate, CapEmployeeUpdate},
	RoleAdmin: {CapEmployeeRead, CapEmployeeCreate, CapEmployeeUpdate, CapEmployeeDelete},
}

// Grants reports whether the role satisfies the given capability.
func (r Role) Grants(cap Capability) bool {
	for _, granted := range roleGrants[r] {
		if granted == cap {
			return true
		}
	}
	return false
}

// Identity is a registered email/password/role triple.
// Email is unique across the credential store and compared case-sensitively.
type Identity struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the identity view resolved from a validated token.
// It carries no secret material and is safe to hand to handlers.
type Principal struct {
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	TokenID string `json:"-"`
}
