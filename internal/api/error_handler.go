package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storepulse/insight-api/internal/core/domain"
)

// failResponse is the canonical error envelope for all API failures.
type failResponse struct {
	Status       int    `json:"status"`
	ErrorMessage string `json:"errorMessage"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain taxonomy errors to their declared status and code.
//   - Converts echo's own errors (bind failures, router 404s) into the
//     same envelope with a taxonomy code.
//   - Logs anything unclassified and downgrades it to ERR_INTERNAL_SERVER
//     without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code := resolveError(err, log, c)
		_ = c.JSON(status, failResponse{Status: status, ErrorMessage: code})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Status, de.Code
	}

	// Echo's own errors: router 404s stay 404; everything else that echo
	// flags as a client error (binding, oversized body) becomes a
	// structured bad request.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch {
		case he.Code == http.StatusNotFound:
			return http.StatusNotFound, domain.ErrResourceNotFound.Code
		case he.Code == http.StatusMethodNotAllowed:
			return http.StatusNotFound, domain.ErrResourceNotFound.Code
		case he.Code >= 400 && he.Code < 500:
			log.Warn().Str("detail", fmt.Sprintf("%v", he.Message)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("request rejected at the boundary")
			return http.StatusBadRequest, domain.ErrInvalidRequestField.Code
		}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, domain.ErrInternalServer.Code
}
