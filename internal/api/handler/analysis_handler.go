package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storepulse/insight-api/internal/api/middleware"
	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/core/idcodec"
	"github.com/storepulse/insight-api/internal/core/ports"
)

// AnalysisHandler fronts the analytics service's analysis endpoints.
// Store ids arrive opaque and are decoded here; analysis result ids are
// upstream-native strings and pass through untouched.
type AnalysisHandler struct {
	service ports.AnalysisProxyService
	stores  ports.StoreLinkRepository
	codec   *idcodec.Codec
}

func NewAnalysisHandler(service ports.AnalysisProxyService, stores ports.StoreLinkRepository, codec *idcodec.Codec) *AnalysisHandler {
	return &AnalysisHandler{service: service, stores: stores, codec: codec}
}

type runAnalysisRequest struct {
	StoreID string `json:"store_id" validate:"required"`
	POSType string `json:"pos_type" validate:"required"`
}

// Run handles POST /api/proxy/analysis/combined.
//
// @Summary      Run a combined analysis for a store
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      runAnalysisRequest  true  "Analysis target"
// @Success      200   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /api/proxy/analysis/combined [post]
func (h *AnalysisHandler) Run(c echo.Context) error {
	p, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req runAnalysisRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequestField
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidRequestField
	}

	storeID, err := h.codec.DecodeClient(req.StoreID)
	if err != nil {
		return err
	}
	owned, err := h.stores.IsOwner(c.Request().Context(), storeID, p.AccountID)
	if err != nil {
		return domain.ErrInternalServer
	}
	if !owned {
		return domain.ErrNotYourStore
	}

	start := time.Now()
	body, err := h.service.RunCombined(c.Request().Context(), storeID, req.POSType)
	observeProxy("analysis_run", start, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, body)
}

// Result handles GET /api/proxy/analysis/:id.
//
// @Summary      Get an analysis result
// @Tags         analysis
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Analysis result id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/proxy/analysis/{id} [get]
func (h *AnalysisHandler) Result(c echo.Context) error {
	if _, err := middleware.Principal(c); err != nil {
		return err
	}

	start := time.Now()
	body, err := h.service.Result(c.Request().Context(), c.Param("id"))
	observeProxy("analysis_result", start, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, body)
}
