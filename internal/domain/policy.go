package domain

// Identity is the authenticated caller. It is built once by the auth
// middleware and stays fixed for the duration of the request.
type Identity struct {
	SubjectID string
	Email     string
	Role      string
}

// Elevated reports whether the identity carries the admin role.
func (i Identity) Elevated() bool {
	return i.Role == RoleAdmin
}

// AccessPolicy is the closed set of route access rules. Every route declares
// exactly one policy in the router; the dispatcher evaluates it before the
// handler runs.
type AccessPolicy int

const (
	// PolicyPublic allows any caller, identity or not.
	PolicyPublic AccessPolicy = iota
	// PolicyAuthenticated requires any valid identity.
	PolicyAuthenticated
	// PolicyElevated requires the admin role.
	PolicyElevated
	// PolicyElevatedOrOwner requires the admin role, or that the identity's
	// subject id equals the resource reference bound to the route.
	PolicyElevatedOrOwner
)

// Authorize classifies one request against a policy. ident is nil when no
// credential was presented. resourceRef is the route's target resource
// identifier and is only consulted by PolicyElevatedOrOwner; ownership is
// exact string equality, never prefix or partial matching.
//
// A nil result means allow. Denials distinguish ErrUnauthenticated (no
// identity on a gated route) from ErrForbidden (identity present but
// insufficient).
func Authorize(policy AccessPolicy, ident *Identity, resourceRef string) error {
	switch policy {
	case PolicyPublic:
		return nil
	case PolicyAuthenticated:
		if ident == nil {
			return ErrUnauthenticated
		}
		return nil
	case PolicyElevated:
		if ident == nil {
			return ErrUnauthenticated
		}
		if !ident.Elevated() {
			return ErrForbidden
		}
		return nil
	case PolicyElevatedOrOwner:
		if ident == nil {
			return ErrUnauthenticated
		}
		if ident.Elevated() || ident.SubjectID == resourceRef {
			return nil
		}
		return ErrForbidden
	default:
		// Unknown policies fail closed.
		if ident == nil {
			return ErrUnauthenticated
		}
		return ErrForbidden
	}
}
