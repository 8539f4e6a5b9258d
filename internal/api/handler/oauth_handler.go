package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storepulse/insight-api/internal/core/ports"
)

// OAuthHandler terminates the federated login flow. The provider redirects
// the browser here with an authorization code; the handler resolves it to a
// local session and hands the attributes back to the front end through a
// redirect, since the browser arrives with a top-level navigation rather
// than an API call.
type OAuthHandler struct {
	service     ports.IdentityService
	frontendURL string
	log         zerolog.Logger
}

func NewOAuthHandler(service ports.IdentityService, frontendURL string, log zerolog.Logger) *OAuthHandler {
	return &OAuthHandler{service: service, frontendURL: strings.TrimSuffix(frontendURL, "/"), log: log}
}

// KakaoCallback handles GET /api/oauth/kakao/callback.
//
// @Summary      Kakao login callback
// @Tags         oauth
// @Param        code  query  string  true  "Authorization code"
// @Success      302
// @Router       /api/oauth/kakao/callback [get]
func (h *OAuthHandler) KakaoCallback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return c.Redirect(http.StatusFound, h.frontendURL)
	}

	attrs, err := h.service.HandleCallback(c.Request().Context(), code)
	if err != nil {
		// The browser is mid-navigation; send it home without a token
		// rather than rendering an error envelope.
		h.log.Warn().Err(err).Msg("kakao callback failed")
		return c.Redirect(http.StatusFound, h.frontendURL)
	}

	q := url.Values{}
	q.Set("accessToken", attrs.AccessToken)
	q.Set("userName", attrs.Name)
	q.Set("userProfileUrl", attrs.ProfileImgURL)
	q.Set("isFirstLogin", strconv.FormatBool(attrs.IsFirstLogin))
	q.Set("userId", attrs.UserID)
	q.Set("userRole", attrs.Role)
	q.Set("storeIdList", strings.Join(attrs.StoreIDs, ","))

	return c.Redirect(http.StatusFound, h.frontendURL+"/auth/kakao/callback?"+q.Encode())
}
