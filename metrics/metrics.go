package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotel_messages_sent_total",
		Help: "Messages delivered through the agent bus.",
	}, []string{"receiver", "kind"})

	WorkflowsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotel_booking_workflows_total",
		Help: "Booking workflows by terminal status.",
	}, []string{"status"})

	PaymentsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotel_payments_processed_total",
		Help: "Payment attempts by outcome.",
	}, []string{"outcome"})
)
