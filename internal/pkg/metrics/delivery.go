package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK      = "ok"
	ResultFailed  = "failed"
	ResultDropped = "dropped"
)

var (
	PackagesByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fastfeet_packages_by_status",
			Help: "Number of packages per derived delivery status",
		},
		[]string{"status"},
	)

	NotificationsEnqueued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fastfeet_notifications_enqueued_total",
			Help: "Notification jobs handed to the queue by job name and result",
		},
		[]string{"name", "result"},
	)

	NotificationsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fastfeet_notifications_dispatched_total",
			Help: "Notification jobs processed by the worker by job name and result",
		},
		[]string{"name", "result"},
	)
)
