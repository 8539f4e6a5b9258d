package handler

import (
	"errors"
	"time"

	"github.com/storepulse/insight-api/internal/api/metrics"
	"github.com/storepulse/insight-api/internal/core/domain"
)

// observeProxy records outcome and duration for one delegated upstream
// call. The outcome label is "ok" or the taxonomy code the failure mapped
// to, so upstream failure modes are countable without log scraping.
func observeProxy(operation string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = domain.ErrInternalServer.Code
		var de *domain.Error
		if errors.As(err, &de) {
			outcome = de.Code
		}
	}
	metrics.ProxyRequestsTotal.WithLabelValues(operation, outcome).Inc()
	metrics.ProxyRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
