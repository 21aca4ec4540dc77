package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "HTTP requests processed, labeled by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	RateLimitRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_rate_limit_rejections_total",
			Help: "Requests rejected by the rate limiter, labeled by endpoint class.",
		},
		[]string{"class"},
	)

	ChatCompletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_chat_completions_total",
			Help: "Chat proxy calls, labeled by provider and outcome.",
		},
		[]string{"provider", "outcome"},
	)
)
