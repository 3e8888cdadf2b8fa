package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store metrics
	StoreReads = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "railbook",
		Subsystem: "store",
		Name:      "reads_total",
		Help:      "Total full-collection reads from the backing file",
	})

	StoreWrites = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "railbook",
		Subsystem: "store",
		Name:      "writes_total",
		Help:      "Total full-collection rewrites of the backing file",
	})

	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "railbook",
		Subsystem: "store",
		Name:      "errors_total",
		Help:      "Total backing file failures by operation",
	}, []string{"operation"})

	// Booking lifecycle metrics
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "railbook",
		Subsystem: "bookings",
		Name:      "created_total",
		Help:      "Total bookings created",
	})

	BookingsRemoved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "railbook",
		Subsystem: "bookings",
		Name:      "removed_total",
		Help:      "Total bookings removed",
	})
)
