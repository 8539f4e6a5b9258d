package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/core/service"
)

type stubAccounts struct {
	account *domain.Account
}

func (s *stubAccounts) FindByID(_ context.Context, id int64) (*domain.Account, error) {
	if s.account == nil || s.account.ID != id {
		return nil, domain.ErrUserNotFound
	}
	return s.account, nil
}

func gateTestSetup(t *testing.T) (*service.TokenService, echo.HandlerFunc, *bool) {
	t.Helper()
	tokens := service.NewTokenService("gate-test-secret", zerolog.Nop())
	reached := false
	handler := func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	}
	return tokens, handler, &reached
}

func runGate(t *testing.T, tokens *service.TokenService, accounts *stubAccounts, handler echo.HandlerFunc, method, path, authHeader string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return Gate(tokens, accounts, zerolog.Nop())(handler)(c)
}

func TestGate_PublicRouteWithoutToken(t *testing.T) {
	accounts := &stubAccounts{}
	tokens, handler, reached := gateTestSetup(t)

	err := runGate(t, tokens, accounts, handler, http.MethodPost, "/api/user/login", "")

	require.NoError(t, err)
	assert.True(t, *reached)
}

func TestGate_ProtectedRouteWithoutToken(t *testing.T) {
	accounts := &stubAccounts{}
	tokens, handler, reached := gateTestSetup(t)

	err := runGate(t, tokens, accounts, handler, http.MethodGet, "/api/proxy/store/list", "")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.False(t, *reached)
}

func TestGate_InvalidTokenOnPublicRoute(t *testing.T) {
	// A present credential is always validated; public classification never
	// downgrades a bad token to anonymous.
	accounts := &stubAccounts{}
	tokens, handler, reached := gateTestSetup(t)

	err := runGate(t, tokens, accounts, handler, http.MethodPost, "/api/user/login", "Bearer not-a-token")

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	assert.False(t, *reached)
}

func TestGate_MalformedHeader(t *testing.T) {
	accounts := &stubAccounts{}
	tokens, handler, reached := gateTestSetup(t)

	err := runGate(t, tokens, accounts, handler, http.MethodGet, "/api/proxy/store/list", "Basic dXNlcjpwYXNz")

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	assert.False(t, *reached)
}

func TestGate_ValidTokenSetsPrincipal(t *testing.T) {
	accounts := &stubAccounts{account: &domain.Account{ID: 42, Role: domain.RoleAdmin}}
	tokens := service.NewTokenService("gate-test-secret", zerolog.Nop())

	var got domain.Principal
	handler := func(c echo.Context) error {
		p, err := Principal(c)
		if err != nil {
			return err
		}
		got = p
		return c.NoContent(http.StatusOK)
	}

	signed, err := tokens.Issue(42, service.SessionTokenTTL)
	require.NoError(t, err)

	err = runGate(t, tokens, accounts, handler, http.MethodGet, "/api/proxy/store/list", "Bearer "+signed)

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.AccountID)
	assert.True(t, got.IsAdmin())
}

func TestGate_UnknownSubject(t *testing.T) {
	// Valid signature over an account that was deleted since issuance.
	accounts := &stubAccounts{}
	tokens, handler, reached := gateTestSetup(t)

	signed, err := tokens.Issue(7, service.SessionTokenTTL)
	require.NoError(t, err)

	err = runGate(t, tokens, accounts, handler, http.MethodGet, "/api/proxy/store/list", "Bearer "+signed)

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	assert.False(t, *reached)
}

func TestPrincipal_MissingFromContext(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := Principal(c)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
