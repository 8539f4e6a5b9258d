package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/core/ports"
)

// LocationHandler fronts the analytics service's location recommender.
// The endpoint is public: no identifiers cross it in either direction.
type LocationHandler struct {
	service ports.LocationProxyService
}

func NewLocationHandler(service ports.LocationProxyService) *LocationHandler {
	return &LocationHandler{service: service}
}

type locationRequest struct {
	Industry  string `json:"industry" validate:"required"`
	TargetAge string `json:"target_age"`
	Priority  string `json:"priority"`
}

// Recommend handles POST /api/proxy/location/recommend.
//
// @Summary      Recommend locations for a new store
// @Tags         location
// @Accept       json
// @Produce      json
// @Param        body  body      locationRequest  true  "Preferences"
// @Success      200   {object}  map[string]any
// @Router       /api/proxy/location/recommend [post]
func (h *LocationHandler) Recommend(c echo.Context) error {
	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequestField
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidRequestField
	}

	start := time.Now()
	body, err := h.service.Recommend(c.Request().Context(), req.Industry, req.TargetAge, req.Priority)
	observeProxy("location_recommend", start, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, body)
}
