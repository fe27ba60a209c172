package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "club_http_requests_total",
			Help: "Total de peticiones HTTP",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "club_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ClientesCreadosTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "club_clientes_creados_total",
			Help: "Altas de clientes por tipo de membresía",
		},
		[]string{"tipo"},
	)

	CuotasRegistradasTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "club_cuotas_registradas_total",
			Help: "Cuotas sociales cobradas por medio de pago",
		},
		[]string{"medio_pago"},
	)

	PagosActividadTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "club_pagos_actividad_total",
			Help: "Pagos de actividades de no socios",
		},
		[]string{"actividad"},
	)

	SociosMorosos = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "club_socios_morosos",
			Help: "Socios morosos en el último reporte generado",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordClienteCreado(tipo string) {
	ClientesCreadosTotal.WithLabelValues(tipo).Inc()
}

func RecordCuota(medioPago string) {
	CuotasRegistradasTotal.WithLabelValues(medioPago).Inc()
}

func RecordPagoActividad(actividad string) {
	PagosActividadTotal.WithLabelValues(actividad).Inc()
}

func SetSociosMorosos(n int) {
	SociosMorosos.Set(float64(n))
}
