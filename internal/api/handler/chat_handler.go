package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storepulse/insight-api/internal/api/middleware"
	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/core/ports"
)

// ChatHandler fronts the analytics service's assistant chat endpoint.
type ChatHandler struct {
	service ports.ChatProxyService
}

func NewChatHandler(service ports.ChatProxyService) *ChatHandler {
	return &ChatHandler{service: service}
}

type chatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionID string `json:"session_id"`
}

// Send handles POST /api/proxy/chat. The caller's identity is taken from
// the principal, never from the payload.
//
// @Summary      Send a chat message to the assistant
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      chatRequest  true  "Message"
// @Success      200   {object}  map[string]any
// @Router       /api/proxy/chat [post]
func (h *ChatHandler) Send(c echo.Context) error {
	p, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequestField
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidRequestField
	}

	start := time.Now()
	body, err := h.service.Send(c.Request().Context(), p.AccountID, req.Message, req.SessionID)
	observeProxy("chat", start, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, body)
}
