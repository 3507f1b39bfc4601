package connector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var actionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "template_connector",
		Name:      "actions_total",
		Help:      "Dispatched actions by identifier and final status. Unknown identifiers are counted as \"unknown\".",
	},
	[]string{"action", "status"},
)
