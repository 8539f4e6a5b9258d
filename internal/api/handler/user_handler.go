package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storepulse/insight-api/internal/api/middleware"
	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/core/ports"
)

// UserHandler handles HTTP requests for local account operations.
type UserHandler struct {
	service ports.AuthService
}

func NewUserHandler(service ports.AuthService) *UserHandler {
	return &UserHandler{service: service}
}

// --- Request / Response types ---

type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=2"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateNameRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

type updatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

type nameCheckRequest struct {
	Name string `json:"name" validate:"required"`
}

type emailCheckRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type okResponse struct {
	Status int `json:"status"`
}

func ok(c echo.Context, status int) error {
	return c.JSON(status, okResponse{Status: status})
}

// SignUp creates a local account.
//
// @Summary      Register a local account
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Signup details"
// @Success      201   {object}  okResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/user [post]
func (h *UserHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequestField
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidRequestField
	}

	if err := h.service.SignUp(c.Request().Context(), req.Email, req.Name, req.Password); err != nil {
		return err
	}
	return ok(c, http.StatusCreated)
}

// Login authenticates a local account and returns session attributes.
//
// @Summary      Login with email and password
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  domain.SessionAttributes
// @Failure      400   {object}  map[string]any
// @Router       /api/user/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequestField
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidRequestField
	}

	attrs, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, attrs)
}

// Me returns the caller's account profile.
//
// @Summary      Get own account info
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Account
// @Failure      401  {object}  map[string]any
// @Router       /api/user [get]
func (h *UserHandler) Me(c echo.Context) error {
	p, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	account, err := h.service.AccountInfo(c.Request().Context(), p.AccountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Delete removes the caller's account.
//
// @Summary      Delete own account
// @Tags         user
// @Security     BearerAuth
// @Success      200  {object}  okResponse
// @Failure      401  {object}  map[string]any
// @Router       /api/user [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	p, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p.AccountID); err != nil {
		return err
	}
	return ok(c, http.StatusOK)
}

// UpdateName changes the caller's display name.
//
// @Summary      Update display name
// @Tags         user
// @Accept       json
// @Security     BearerAuth
// @Param        body  body      updateNameRequest  true  "New name"
// @Success      200   {object}  okResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/user/name [patch]
func (h *UserHandler) UpdateName(c echo.Context) error {
	p, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req updateNameRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequestField
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidRequestField
	}

	if err := h.service.UpdateName(c.Request().Context(), p.AccountID, req.Name); err != nil {
		return err
	}
	return ok(c, http.StatusOK)
}

// UpdatePassword changes the caller's password. The credential may be a
// regular session token or the short-lived token from a reset mail; the
// gate treats both identically.
//
// @Summary      Update password
// @Tags         user
// @Accept       json
// @Security     BearerAuth
// @Param        body  body      updatePasswordRequest  true  "New password"
// @Success      200   {object}  okResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/user/password [patch]
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	p, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequestField
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidRequestField
	}

	if err := h.service.UpdatePassword(c.Request().Context(), p.AccountID, req.Password); err != nil {
		return err
	}
	return ok(c, http.StatusOK)
}

// CheckName reports whether a display name is available.
//
// @Summary      Check name availability
// @Tags         user
// @Accept       json
// @Param        body  body      nameCheckRequest  true  "Name to check"
// @Success      200   {object}  okResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/user/name/check [post]
func (h *UserHandler) CheckName(c echo.Context) error {
	var req nameCheckRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequestField
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidRequestField
	}

	if err := h.service.CheckNameDuplicate(c.Request().Context(), req.Name); err != nil {
		return err
	}
	return ok(c, http.StatusOK)
}

// CheckEmail reports whether an email address is available.
//
// @Summary      Check email availability
// @Tags         user
// @Accept       json
// @Param        body  body      emailCheckRequest  true  "Email to check"
// @Success      200   {object}  okResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/user/email/check [post]
func (h *UserHandler) CheckEmail(c echo.Context) error {
	var req emailCheckRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequestField
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidRequestField
	}

	if err := h.service.CheckEmailDuplicate(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return ok(c, http.StatusOK)
}
