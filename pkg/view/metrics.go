package view

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// loadsTotal counts loader outcomes by result:
//
//	ready  - loadable held a component, no invocation needed
//	loaded - loader invocation succeeded
//	failed - loader returned an error or panicked
//	empty  - loader resolved but produced no usable component
//	stale  - result discarded by the generation guard
var loadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "vadmin",
	Name:      "view_loads_total",
	Help:      "Total view loader outcomes by result",
}, []string{"result"})

func recordLoad(result string) {
	loadsTotal.WithLabelValues(result).Inc()
}
