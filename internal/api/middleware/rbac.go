package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/storepulse/insight-api/internal/core/domain"
)

// RequireAdmin rejects callers whose principal lacks the admin role. It
// assumes the gate already ran; a missing principal is treated as
// unauthenticated, not forbidden.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, err := Principal(c)
			if err != nil {
				return err
			}
			if !p.IsAdmin() {
				return domain.ErrNotAdmin
			}
			return next(c)
		}
	}
}
