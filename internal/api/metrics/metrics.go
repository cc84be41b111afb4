// Package metrics defines all custom Prometheus metrics for the portal API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics register themselves with the default registry at init time; the
// router exposes them at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of administrator login attempts, by result.",
	},
	[]string{"result"},
)

// ContactsReceivedTotal counts stored contact messages.
var ContactsReceivedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contacts_received_total",
		Help:      "Total number of contact messages accepted and stored.",
	},
)

// ArticlesCreatedTotal counts published news articles.
// Label:
//   - with_attachment: "true" when a PDF was uploaded alongside the article
var ArticlesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_created_total",
		Help:      "Total number of news articles created, by attachment presence.",
	},
	[]string{"with_attachment"},
)

// ArticlesDeletedTotal counts deleted news articles.
var ArticlesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_deleted_total",
		Help:      "Total number of news articles deleted.",
	},
)

// UploadsRejectedTotal counts rejected attachment uploads.
// Label:
//   - reason: "empty_filename" or "bad_extension"
var UploadsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_rejected_total",
		Help:      "Total number of attachment uploads rejected before storage.",
	},
	[]string{"reason"},
)
