package auth

// RoleAdmin is the role tag required by the admin-only endpoints.
const RoleAdmin = "admin"

// Identity is the authenticated caller of a single request. It is built
// from a decoded token at request start and discarded at request end.
//
// Role is optional: tokens minted before roles were added leave it empty,
// and an empty role simply grants no privileged access.
type Identity struct {
	Username string
	UserID   int64
	Role     string
}

// HasRole reports whether the identity exists and carries the given role.
func (i *Identity) HasRole(role string) bool {
	return i != nil && i.Role == role
}

// IdentityFromClaims converts decoded token claims into an Identity.
func IdentityFromClaims(c *Claims) *Identity {
	return &Identity{
		Username: c.Subject,
		UserID:   c.UserID,
		Role:     c.Role,
	}
}
