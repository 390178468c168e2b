// Package metrics exposes the dispatch pipeline's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notify_notifications_sent_total",
		Help: "Notifications accepted by the mail provider, by family.",
	}, []string{"family"})

	NotificationsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notify_notifications_failed_total",
		Help: "Notifications rejected by the mail provider, by family.",
	}, []string{"family"})

	EventsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notify_events_skipped_total",
		Help: "Domain events skipped as malformed, by family.",
	}, []string{"family"})

	DeliveryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "notify_delivery_duration_seconds",
		Help:    "Wall time of one delivery attempt including log writes.",
		Buckets: prometheus.DefBuckets,
	}, []string{"family"})
)
