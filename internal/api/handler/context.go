package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amanj01/catalog-admin/internal/core/domain"
)

// AuditRecorder receives one entry per admin mutation. Implementations must
// not block the request path.
type AuditRecorder interface {
	Record(actor, action, resource, resourceID string)
}

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: both fields must be
// present, their absence proves the middleware did not run on this route.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(domain.Role)
	if userID == "" || role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Identity{UserID: userID, Role: role}, nil
}
