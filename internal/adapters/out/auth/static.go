// Package auth provides the shipped implementations of the identity and
// authorization capability ports: a static bearer-token table and a role
// check on the principal's staff flag. Real identity providers plug in by
// implementing the same ports.
package auth

import (
	"context"
	"strings"

	"tableorders/internal/core/ports"
	"tableorders/internal/pkg/errs"
)

// StaticTokenVerifier resolves bearer tokens against a fixed in-memory table.
type StaticTokenVerifier struct {
	principals map[string]ports.Principal
}

// NewStaticTokenVerifier creates a verifier over the given token table. The
// map keys are credentials, the values the principals they authenticate as.
func NewStaticTokenVerifier(principals map[string]ports.Principal) *StaticTokenVerifier {
	table := make(map[string]ports.Principal, len(principals))
	for token, principal := range principals {
		table[token] = principal
	}
	return &StaticTokenVerifier{principals: table}
}

// Verify implements ports.IdentityVerifier.
func (v *StaticTokenVerifier) Verify(_ context.Context, credential string) (ports.Principal, error) {
	principal, ok := v.principals[credential]
	if !ok {
		return ports.Principal{}, ports.ErrUnauthenticated
	}
	return principal, nil
}

// StaffRoleAuthorizer authorizes on the principal's staff flag.
type StaffRoleAuthorizer struct{}

// NewStaffRoleAuthorizer creates a staff-flag authorizer.
func NewStaffRoleAuthorizer() StaffRoleAuthorizer {
	return StaffRoleAuthorizer{}
}

// AuthorizeStaff implements ports.RoleAuthorizer.
func (StaffRoleAuthorizer) AuthorizeStaff(principal ports.Principal) error {
	if !principal.Staff {
		return ports.ErrNotStaff
	}
	return nil
}

// ParseTokenTable parses a configured token table of the form
// "subject=token,subject=token". Every listed principal is staff. An empty
// input yields an empty table, so staff routes reject every caller.
func ParseTokenTable(raw string) (map[string]ports.Principal, error) {
	table := make(map[string]ports.Principal)
	if strings.TrimSpace(raw) == "" {
		return table, nil
	}

	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		subject, token, ok := strings.Cut(pair, "=")
		subject = strings.TrimSpace(subject)
		token = strings.TrimSpace(token)
		if !ok || subject == "" || token == "" {
			return nil, errs.NewValueIsInvalidError("staff token table")
		}
		table[token] = ports.Principal{Subject: subject, Staff: true}
	}
	return table, nil
}
