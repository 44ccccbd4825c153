package domain

// Identity is the authenticated caller of an operation.
type Identity struct {
	UserID int
	Role   string
}

// RequireRole fails with ErrForbidden unless the identity carries one of roles.
func RequireRole(id Identity, roles ...string) error {
	if id.UserID == 0 {
		return ErrForbidden
	}
	for _, role := range roles {
		if id.Role == role {
			return nil
		}
	}
	return ErrForbidden
}
