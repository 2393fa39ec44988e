package ports

import (
	"context"

	"tableorders/internal/pkg/errs"
)

// ErrUnauthenticated is returned by IdentityVerifier implementations when the
// presented credential does not resolve to a principal.
var ErrUnauthenticated = errs.NewValueIsInvalidError("credential is not valid")

// ErrNotStaff is returned by RoleAuthorizer implementations when a principal
// is authenticated but not allowed to manage order lifecycles.
var ErrNotStaff = errs.NewValueIsInvalidError("principal is not staff")

// Principal is an authenticated caller as yielded by an IdentityVerifier.
type Principal struct {
	// Subject identifies the caller (user name, token subject, ...).
	Subject string

	// Staff reports whether the caller may manage order lifecycles.
	Staff bool
}

// IdentityVerifier is the external identity capability. Given a request
// credential it yields an authenticated principal or fails with
// ErrUnauthenticated. The credential format is opaque to the core; the HTTP
// adapter passes whatever the transport carries (e.g. a bearer token).
type IdentityVerifier interface {
	Verify(ctx context.Context, credential string) (Principal, error)
}

// RoleAuthorizer is the external authorization capability. Given an
// authenticated principal it passes or fails the "is staff" check.
type RoleAuthorizer interface {
	AuthorizeStaff(principal Principal) error
}
