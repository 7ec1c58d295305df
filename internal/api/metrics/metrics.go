// Package metrics defines and registers all custom Prometheus metrics for
// the marketplace API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: learner, mentor, or client
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthDeniedTotal counts requests rejected before reaching a handler.
// Label:
//   - reason: "missing_token", "invalid_token", or "wrong_role"
var AuthDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denied_total",
		Help:      "Total number of requests denied by the auth or role gates.",
	},
	[]string{"reason"},
)

// EnrollmentsTotal counts enrollment attempts by outcome.
// Label:
//   - result: "created" or "duplicate"
var EnrollmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrollments_total",
		Help:      "Total number of course enrollment attempts, by result.",
	},
	[]string{"result"},
)

// ApplicationsTotal counts job application attempts by outcome.
// Label:
//   - result: "created" or "duplicate"
var ApplicationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_total",
		Help:      "Total number of job application attempts, by result.",
	},
	[]string{"result"},
)
