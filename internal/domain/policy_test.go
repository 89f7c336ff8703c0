package domain_test

import (
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	admin := &domain.Identity{SubjectID: "admin-1", Role: domain.RoleAdmin}
	owner := &domain.Identity{SubjectID: "acct-1", Role: domain.RoleMember}
	other := &domain.Identity{SubjectID: "acct-2", Role: domain.RoleMember}

	tests := []struct {
		name        string
		policy      domain.AccessPolicy
		ident       *domain.Identity
		resourceRef string
		wantErr     error
	}{
		{"public allows anonymous", domain.PolicyPublic, nil, "", nil},
		{"public allows any identity", domain.PolicyPublic, other, "", nil},

		{"authenticated rejects anonymous", domain.PolicyAuthenticated, nil, "", domain.ErrUnauthenticated},
		{"authenticated allows member", domain.PolicyAuthenticated, other, "", nil},
		{"authenticated allows admin", domain.PolicyAuthenticated, admin, "", nil},

		{"elevated rejects anonymous", domain.PolicyElevated, nil, "", domain.ErrUnauthenticated},
		{"elevated rejects member", domain.PolicyElevated, other, "", domain.ErrForbidden},
		{"elevated allows admin", domain.PolicyElevated, admin, "", nil},

		{"owner rule rejects anonymous", domain.PolicyElevatedOrOwner, nil, "acct-1", domain.ErrUnauthenticated},
		{"owner rule allows the owner", domain.PolicyElevatedOrOwner, owner, "acct-1", nil},
		{"owner rule allows admin over any resource", domain.PolicyElevatedOrOwner, admin, "acct-1", nil},
		{"owner rule rejects a non-owner member", domain.PolicyElevatedOrOwner, other, "acct-1", domain.ErrForbidden},
		{"ownership is exact equality not prefix", domain.PolicyElevatedOrOwner, owner, "acct-10", domain.ErrForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := domain.Authorize(tc.policy, tc.ident, tc.resourceRef)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}

	t.Run("unknown policies fail closed", func(t *testing.T) {
		assert.ErrorIs(t, domain.Authorize(domain.AccessPolicy(99), nil, ""), domain.ErrUnauthenticated)
		assert.ErrorIs(t, domain.Authorize(domain.AccessPolicy(99), other, ""), domain.ErrForbidden)
	})
}
