// Package metrics defines all custom Prometheus metrics for the insight
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "insight"

// --- Request gate ---

// GateRejectionsTotal counts requests rejected before reaching a handler.
// Label:
//   - reason: "missing_token", "malformed_header", "invalid_token", "unknown_subject"
var GateRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_rejections_total",
		Help:      "Total number of requests rejected by the authentication gate.",
	},
	[]string{"reason"},
)

// --- Proxy gateway ---

// ProxyRequestsTotal counts delegated analytics calls by outcome.
// Labels:
//   - operation: logical upstream operation (e.g. "store_register", "chat")
//   - outcome: "ok" or the domain error code the failure classified to
var ProxyRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "proxy_requests_total",
		Help:      "Total number of proxied analytics calls, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// ProxyRequestDuration measures end-to-end duration of a proxied call,
// including upstream network time and id re-encoding.
var ProxyRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "proxy_request_duration_seconds",
		Help:      "Duration of proxied analytics calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// --- Mail ---

// MailJobsTotal counts asynchronous mail deliveries.
// Label:
//   - result: "sent" or "failed"
var MailJobsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_jobs_total",
		Help:      "Total number of outbound mail jobs, by delivery result.",
	},
	[]string{"result"},
)
