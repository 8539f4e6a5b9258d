package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storepulse/insight-api/internal/api/metrics"
	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/core/service"
)

// principalKey is the echo context key the gate stores the Principal under.
// Handlers read it through Principal(); nothing else touches it.
const principalKey = "auth.principal"

// accountLoader is the slice of the account repository the gate needs to
// turn a token subject into a Principal.
type accountLoader interface {
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
}

// Gate authenticates every request. Route classification runs first; a
// request without a credential passes only when its (path, method) pair is
// in the public table. A present bearer token always goes through
// validation regardless of route class; there is no silent downgrade to
// anonymous on a bad token.
func Gate(tokens *service.TokenService, accounts accountLoader, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			header := req.Header.Get("Authorization")

			if header == "" {
				if IsPublicRoute(req.Method, req.URL.Path) {
					return next(c)
				}
				metrics.GateRejectionsTotal.WithLabelValues("missing_token").Inc()
				return domain.ErrUnauthorized
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.GateRejectionsTotal.WithLabelValues("malformed_header").Inc()
				return domain.ErrInvalidToken
			}

			accountID, err := tokens.Validate(parts[1])
			if err != nil {
				metrics.GateRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return domain.ErrInvalidToken
			}

			account, err := accounts.FindByID(req.Context(), accountID)
			if err != nil {
				// A valid signature over an account that no longer exists
				// is still an authentication failure.
				log.Warn().Int64("account_id", accountID).Msg("token subject not found")
				metrics.GateRejectionsTotal.WithLabelValues("unknown_subject").Inc()
				return domain.ErrInvalidToken
			}

			c.Set(principalKey, domain.Principal{AccountID: account.ID, Role: account.Role})
			return next(c)
		}
	}
}

// Principal returns the authenticated caller set by the gate. Routes that
// reach a handler without passing validation have no principal; such a
// handler call is a routing bug and surfaces as 401, never a panic.
func Principal(c echo.Context) (domain.Principal, error) {
	p, ok := c.Get(principalKey).(domain.Principal)
	if !ok {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	return p, nil
}
