package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storepulse/insight-api/internal/core/domain"
)

func TestUserHandler_SignUp(t *testing.T) {
	svc := &stubAuthService{}
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/api/user",
		`{"email":"owner@example.com","name":"gildong","password":"secret-pass"}`)

	require.NoError(t, h.SignUp(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "owner@example.com", svc.lastEmail)
}

func TestUserHandler_SignUpInvalidEmail(t *testing.T) {
	h := NewUserHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodPost, "/api/user",
		`{"email":"not-an-email","name":"gildong","password":"secret-pass"}`)

	assert.ErrorIs(t, h.SignUp(c), domain.ErrInvalidRequestField)
}

func TestUserHandler_SignUpShortPassword(t *testing.T) {
	h := NewUserHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodPost, "/api/user",
		`{"email":"owner@example.com","name":"gildong","password":"short"}`)

	assert.ErrorIs(t, h.SignUp(c), domain.ErrInvalidRequestField)
}

func TestUserHandler_Login(t *testing.T) {
	svc := &stubAuthService{loginAttrs: &domain.SessionAttributes{
		AccessToken: "tkn",
		Name:        "gildong",
		UserID:      "opaque-id",
		Role:        domain.RoleUser,
		StoreIDs:    []string{"s1", "s2"},
	}}
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/api/user/login",
		`{"email":"owner@example.com","password":"secret-pass"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got domain.SessionAttributes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "tkn", got.AccessToken)
	assert.Equal(t, []string{"s1", "s2"}, got.StoreIDs)
}

func TestUserHandler_LoginFailurePassesThrough(t *testing.T) {
	h := NewUserHandler(&stubAuthService{loginErr: domain.ErrLoginFailed})

	c, _ := newTestContext(http.MethodPost, "/api/user/login",
		`{"email":"owner@example.com","password":"wrong-pass"}`)

	assert.ErrorIs(t, h.Login(c), domain.ErrLoginFailed)
}

func TestUserHandler_MeRequiresPrincipal(t *testing.T) {
	h := NewUserHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodGet, "/api/user", "")

	assert.ErrorIs(t, h.Me(c), domain.ErrUnauthorized)
}

func TestUserHandler_Me(t *testing.T) {
	svc := &stubAuthService{account: &domain.Account{ID: 9, Name: "gildong", Role: domain.RoleUser}}
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/api/user", "")
	setPrincipal(c, 9, domain.RoleUser)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"gildong"`)
	// Internal id and password hash never serialize.
	assert.NotContains(t, rec.Body.String(), `"id"`)
}
