// Package metrics holds the Prometheus instruments for the relay. They are registered with the
// default registry and served by the monitoring server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "whatsapp_relay"

// Outbound request results.
const (
	ResultSuccess          = "success"
	ResultUnreachable      = "unreachable"
	ResultInvalidResponse  = "invalid_response"
	ResultDownstreamStatus = "downstream_error_status"
)

var (
	// InboundMessagesTotal counts webhook notifications accepted by the receiver.
	InboundMessagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inbound_messages_total",
		Help:      "Number of inbound WhatsApp webhook messages received.",
	})

	// OutboundRequestsTotal counts calls to the messaging service by result.
	OutboundRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "outbound_requests_total",
		Help:      "Number of send requests forwarded to the messaging service.",
	}, []string{"result"})

	// OutboundRequestDuration observes the round trip time of calls to the messaging service.
	OutboundRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "outbound_request_duration_seconds",
		Help:      "Round trip time of requests to the messaging service.",
		Buckets:   prometheus.DefBuckets,
	})
)
