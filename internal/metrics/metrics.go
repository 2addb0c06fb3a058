package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	SessionEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_session_events_total",
			Help: "Total number of login and logout events",
		},
		[]string{"type", "caused_by"},
	)

	FailedLoginsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: Namespace + "_failed_logins_total",
			Help: "Total number of rejected login attempts",
		},
	)

	ActiveSessions = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: Namespace + "_active_sessions",
			Help: "Current number of registered authentication sessions",
		},
		[]string{"registry"},
	)

	ExpiredSessionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: Namespace + "_expired_sessions_total",
			Help: "Total number of sessions closed by the expiry sweeper",
		},
	)

	IsLeader = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: Namespace + "_leader_is_leader",
			Help: "1 if this instance is the leader, 0 otherwise",
		},
	)

	LeadershipChanges = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: Namespace + "_leader_changes_total",
			Help: "Total number of leadership changes",
		})
)
