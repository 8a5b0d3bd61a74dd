package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "airport_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "airport_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airport_orders_created_total",
		Help: "Orders committed together with all of their tickets.",
	})

	TicketsBooked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airport_tickets_booked_total",
		Help: "Tickets committed as part of an order.",
	})

	SeatConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airport_seat_conflicts_total",
		Help: "Orders rolled back because a seat was already booked.",
	})

	EventPublishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airport_event_publish_errors_total",
		Help: "Order events that could not be published.",
	})
)
