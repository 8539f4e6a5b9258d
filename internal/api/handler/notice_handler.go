package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storepulse/insight-api/internal/api/middleware"
	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/core/idcodec"
	"github.com/storepulse/insight-api/internal/core/ports"
)

// NoticeHandler handles announcement CRUD. Reads are public; writes sit
// behind the admin middleware in the router. Notice ids cross the boundary
// in opaque form only.
type NoticeHandler struct {
	service ports.NoticeService
	codec   *idcodec.Codec
}

func NewNoticeHandler(service ports.NoticeService, codec *idcodec.Codec) *NoticeHandler {
	return &NoticeHandler{service: service, codec: codec}
}

type noticeRequest struct {
	Title   string `json:"title" validate:"required,min=1"`
	Content string `json:"content" validate:"required"`
}

type noticeResponse struct {
	NoticeID  string    `json:"noticeId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type noticePageResponse struct {
	Notices []noticeResponse `json:"notices"`
}

type pageCountResponse struct {
	PageCount int64 `json:"pageCount"`
}

func (h *NoticeHandler) toResponse(n *domain.Notice) noticeResponse {
	return noticeResponse{
		NoticeID:  h.codec.Encode(n.ID),
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// Get handles GET /api/notice/:id.
//
// @Summary      Get one notice
// @Tags         notice
// @Produce      json
// @Param        id   path      string  true  "Opaque notice id"
// @Success      200  {object}  noticeResponse
// @Failure      404  {object}  map[string]any
// @Router       /api/notice/{id} [get]
func (h *NoticeHandler) Get(c echo.Context) error {
	id, err := h.codec.DecodeClient(c.Param("id"))
	if err != nil {
		return err
	}

	notice, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.toResponse(notice))
}

// Page handles GET /api/notice/page/:page (1-based).
//
// @Summary      List notices by page
// @Tags         notice
// @Produce      json
// @Param        page  path      int  true  "Page number, 1-based"
// @Success      200   {object}  noticePageResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/notice/page/{page} [get]
func (h *NoticeHandler) Page(c echo.Context) error {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		return domain.ErrInvalidQueryParameter
	}

	notices, err := h.service.Page(c.Request().Context(), page)
	if err != nil {
		return err
	}

	out := make([]noticeResponse, 0, len(notices))
	for _, n := range notices {
		out = append(out, h.toResponse(n))
	}
	return c.JSON(http.StatusOK, noticePageResponse{Notices: out})
}

// PageCount handles GET /api/notice/page_count.
//
// @Summary      Count notice pages
// @Tags         notice
// @Produce      json
// @Success      200  {object}  pageCountResponse
// @Router       /api/notice/page_count [get]
func (h *NoticeHandler) PageCount(c echo.Context) error {
	count, err := h.service.PageCount(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pageCountResponse{PageCount: count})
}

// Create handles POST /api/notice. Admin only.
//
// @Summary      Create a notice
// @Tags         notice
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      noticeRequest  true  "Notice content"
// @Success      201   {object}  noticeResponse
// @Failure      403   {object}  map[string]any
// @Router       /api/notice [post]
func (h *NoticeHandler) Create(c echo.Context) error {
	p, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req noticeRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequestField
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidRequestField
	}

	notice, err := h.service.Create(c.Request().Context(), p.AccountID, req.Title, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, h.toResponse(notice))
}

// Update handles PUT /api/notice/:id. Admin only.
//
// @Summary      Update a notice
// @Tags         notice
// @Accept       json
// @Security     BearerAuth
// @Param        id    path      string         true  "Opaque notice id"
// @Param        body  body      noticeRequest  true  "New content"
// @Success      200   {object}  okResponse
// @Failure      404   {object}  map[string]any
// @Router       /api/notice/{id} [put]
func (h *NoticeHandler) Update(c echo.Context) error {
	id, err := h.codec.DecodeClient(c.Param("id"))
	if err != nil {
		return err
	}

	var req noticeRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidRequestField
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidRequestField
	}

	if err := h.service.Update(c.Request().Context(), id, req.Title, req.Content); err != nil {
		return err
	}
	return ok(c, http.StatusOK)
}

// Delete handles DELETE /api/notice/:id. Admin only.
//
// @Summary      Delete a notice
// @Tags         notice
// @Security     BearerAuth
// @Param        id   path      string  true  "Opaque notice id"
// @Success      200  {object}  okResponse
// @Failure      404  {object}  map[string]any
// @Router       /api/notice/{id} [delete]
func (h *NoticeHandler) Delete(c echo.Context) error {
	id, err := h.codec.DecodeClient(c.Param("id"))
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return ok(c, http.StatusOK)
}
