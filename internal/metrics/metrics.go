package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CheckinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coreday_checkins_total",
			Help: "Total number of attendance registrations",
		},
		[]string{"restriccion"},
	)

	ImportedRowsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coreday_imported_rows_total",
			Help: "Total number of attendee rows accepted from uploads",
		},
	)

	PersonasTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "coreday_personas_total",
			Help: "Current number of attendees in the master list",
		},
	)
)
