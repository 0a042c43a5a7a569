package models

// Principal is the authenticated identity derived from a verified
// token. It exists for the duration of a single request and is never
// persisted.
type Principal struct {
	// Subject is the username the token was issued for.
	Subject string

	// Roles granted at login time. This is the source of truth for
	// any role check a handler performs.
	Roles []string
}

// HasRole reports whether the principal holds the given role.
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
