package http

import (
	"net/http"
	"strings"

	"tableorders/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// PrincipalContextKey is the echo context key under which the staff middleware
// stores the authenticated ports.Principal for downstream handlers.
const PrincipalContextKey = "principal"

// NewStaffMiddleware builds echo middleware that gates staff-only routes. It
// extracts the bearer credential, verifies it against the identity capability
// and checks the staff role; the wrapped handler only runs for staff callers.
func NewStaffMiddleware(verifier ports.IdentityVerifier, authorizer ports.RoleAuthorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			credential, ok := bearerCredential(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, MessageResponse{Message: "Authentication required"})
			}

			principal, err := verifier.Verify(ctx.Request().Context(), credential)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, MessageResponse{Message: "Invalid token"})
			}

			if err := authorizer.AuthorizeStaff(principal); err != nil {
				return ctx.JSON(http.StatusForbidden, MessageResponse{Message: "Staff access required"})
			}

			ctx.Set(PrincipalContextKey, principal)
			return next(ctx)
		}
	}
}

func bearerCredential(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	credential := strings.TrimSpace(header[len(prefix):])
	if credential == "" {
		return "", false
	}
	return credential, true
}
