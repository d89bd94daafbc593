// Package metrics defines and registers all custom Prometheus metrics for
// the employee directory API. It is the single source of truth for metric
// names, labels, and help strings.
//
// promauto registers everything with the default registry at package init;
// the router exposes it on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "employee_api"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "duplicate", or "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthzDeniedTotal counts denied authorization checks.
// Label:
//   - reason: "unauthenticated" or "forbidden"
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of denied authorization checks, by reason.",
	},
	[]string{"reason"},
)

// ── Registry metrics ──────────────────────────────────────────────────────────

// EmployeesMutatedTotal counts applied registry mutations.
// Label:
//   - action: "created", "updated", or "deleted"
var EmployeesMutatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employees_mutated_total",
		Help:      "Total number of employee registry mutations, by action.",
	},
	[]string{"action"},
)

// ── Audit pipeline metrics ────────────────────────────────────────────────────

// AuditProcessedTotal counts audit entries persisted successfully.
// Label:
//   - action: the audited action (e.g. "employee.created")
var AuditProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_processed_total",
		Help:      "Total number of audit entries successfully persisted.",
	},
	[]string{"action"},
)

// AuditErrorsTotal counts audit entries that failed to persist.
// Label:
//   - action: the audited action
var AuditErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of audit entries that failed to persist.",
	},
	[]string{"action"},
)

// AuditQueueDepth tracks the current number of entries waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
