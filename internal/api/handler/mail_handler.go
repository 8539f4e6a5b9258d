package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/core/ports"
)

// MailHandler handles the email verification and password-reset flows.
type MailHandler struct {
	service ports.MailService
}

func NewMailHandler(service ports.MailService) *MailHandler {
	return &MailHandler{service: service}
}

type mailSendRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type mailVerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// Send mails a 6-digit verification code to the address.
//
// @Summary      Send verification code
// @Tags         mail
// @Accept       json
// @Param        body  body      mailSendRequest  true  "Destination address"
// @Success      200   {object}  okResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/mail/send [post]
func (h *MailHandler) Send(c echo.Context) error {
	var req mailSendRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequestField
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidRequestField
	}

	if err := h.service.SendVerification(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return ok(c, http.StatusOK)
}

// Verify checks a previously mailed code. The code is single use; a
// successful check consumes it.
//
// @Summary      Verify mailed code
// @Tags         mail
// @Accept       json
// @Param        body  body      mailVerifyRequest  true  "Address and code"
// @Success      200   {object}  okResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/mail/verify [post]
func (h *MailHandler) Verify(c echo.Context) error {
	var req mailVerifyRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequestField
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidRequestField
	}

	if err := h.service.CheckVerification(c.Request().Context(), req.Email, req.Code); err != nil {
		return err
	}
	return ok(c, http.StatusOK)
}

// PasswordReset mails a reset link carrying a short-lived token.
//
// @Summary      Send password-reset mail
// @Tags         mail
// @Accept       json
// @Param        body  body      mailSendRequest  true  "Account address"
// @Success      200   {object}  okResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/mail/password [post]
func (h *MailHandler) PasswordReset(c echo.Context) error {
	var req mailSendRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequestField
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidRequestField
	}

	if err := h.service.SendPasswordReset(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return ok(c, http.StatusOK)
}
