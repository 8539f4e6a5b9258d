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

// StoreHandler fronts the analytics service's store endpoints. It decodes
// opaque ids from the client, verifies the caller owns the store, and
// delegates; upstream bodies come back with ids already re-encoded.
type StoreHandler struct {
	service ports.StoreProxyService
	stores  ports.StoreLinkRepository
	codec   *idcodec.Codec
}

func NewStoreHandler(service ports.StoreProxyService, stores ports.StoreLinkRepository, codec *idcodec.Codec) *StoreHandler {
	return &StoreHandler{service: service, stores: stores, codec: codec}
}

type registerStoreRequest struct {
	StoreName      string `json:"store_name" validate:"required,min=2"`
	BusinessNumber string `json:"business_number" validate:"required,len=10"`
	POSType        string `json:"pos_type" validate:"required"`
	Category       string `json:"category"`
}

// ownedStoreID decodes the :id path param and confirms ownership. The gate
// authenticates; ownership is checked here, per resource.
func (h *StoreHandler) ownedStoreID(c echo.Context) (int64, error) {
	p, err := middleware.Principal(c)
	if err != nil {
		return 0, err
	}

	storeID, err := h.codec.DecodeClient(c.Param("id"))
	if err != nil {
		return 0, err
	}

	owned, err := h.stores.IsOwner(c.Request().Context(), storeID, p.AccountID)
	if err != nil {
		return 0, domain.ErrInternalServer
	}
	if !owned {
		return 0, domain.ErrNotYourStore
	}
	return storeID, nil
}

// Register handles POST /api/proxy/store/register.
//
// @Summary      Register a store with business verification
// @Tags         store
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerStoreRequest  true  "Store details"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Router       /api/proxy/store/register [post]
func (h *StoreHandler) Register(c echo.Context) error {
	p, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req registerStoreRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequestField
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidRequestField
	}

	start := time.Now()
	body, err := h.service.RegisterWithBusiness(c.Request().Context(), p.AccountID, ports.StoreRegisterInput{
		StoreName:      req.StoreName,
		BusinessNumber: req.BusinessNumber,
		POSType:        req.POSType,
		Category:       req.Category,
	})
	observeProxy("store_register", start, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, body)
}

// List handles GET /api/proxy/store/list.
//
// @Summary      List the caller's stores
// @Tags         store
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /api/proxy/store/list [get]
func (h *StoreHandler) List(c echo.Context) error {
	p, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	start := time.Now()
	body, err := h.service.List(c.Request().Context(), p.AccountID)
	observeProxy("store_list", start, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, body)
}

// Detail handles GET /api/proxy/store/:id.
//
// @Summary      Get one store
// @Tags         store
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Opaque store id"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/proxy/store/{id} [get]
func (h *StoreHandler) Detail(c echo.Context) error {
	storeID, err := h.ownedStoreID(c)
	if err != nil {
		return err
	}

	start := time.Now()
	body, err := h.service.Detail(c.Request().Context(), storeID)
	observeProxy("store_detail", start, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, body)
}

// SetMain handles PATCH /api/proxy/store/:id/main.
//
// @Summary      Mark a store as the caller's main store
// @Tags         store
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Opaque store id"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /api/proxy/store/{id}/main [patch]
func (h *StoreHandler) SetMain(c echo.Context) error {
	storeID, err := h.ownedStoreID(c)
	if err != nil {
		return err
	}

	start := time.Now()
	body, err := h.service.SetMain(c.Request().Context(), storeID)
	observeProxy("store_set_main", start, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, body)
}

// Delete handles DELETE /api/proxy/store/:id.
//
// @Summary      Delete a store
// @Tags         store
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Opaque store id"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /api/proxy/store/{id} [delete]
func (h *StoreHandler) Delete(c echo.Context) error {
	storeID, err := h.ownedStoreID(c)
	if err != nil {
		return err
	}

	start := time.Now()
	body, err := h.service.Delete(c.Request().Context(), storeID)
	observeProxy("store_delete", start, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, body)
}
