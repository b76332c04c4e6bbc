// Package metrics defines and registers all custom Prometheus metrics for the
// compliance API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "compliance"

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "denied", or "rate_limited"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenValidationsTotal counts bearer-token validations performed by the auth
// middleware.
// Label:
//   - result: "ok" or "invalid"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of session token validations, by result.",
	},
	[]string{"result"},
)

// RootGuardRejectionsTotal counts admin mutations rejected by the root
// account guard.
// Label:
//   - field: the protected field the mutation tried to change ("role", "email", "active")
var RootGuardRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "root_guard_rejections_total",
		Help:      "Total number of mutations rejected by the root account guard, by protected field.",
	},
	[]string{"field"},
)

// UserUpdatesTotal counts admin user updates that reached storage.
// Label:
//   - result: "ok" or "error"
var UserUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_updates_total",
		Help:      "Total number of admin user updates applied, by result.",
	},
	[]string{"result"},
)
