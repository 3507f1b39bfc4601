package rest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess        = "success"
	outcomeHTTPError      = "http_error"
	outcomeTransportError = "transport_error"
)

var (
	callsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "template_connector",
			Name:      "rest_calls_total",
			Help:      "REST calls issued to the external product, by method and outcome.",
		},
		[]string{"method", "outcome"},
	)

	callDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "template_connector",
			Name:      "rest_call_duration_seconds",
			Help:      "Wall time of REST calls, including reading the response body.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)
