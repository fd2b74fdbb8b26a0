// Package metrics registers the Prometheus instruments exposed on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// FilasInvalidas counts backend rows that could not be parsed into an
	// item and were skipped during a load.
	FilasInvalidas = promauto.NewCounter(prometheus.CounterOpts{
		Name: "listacompras_filas_invalidas_total",
		Help: "Filas del backend tabular descartadas por no poder interpretarse.",
	})

	// OperacionesBackend counts round trips against the tabular backend,
	// labelled by operation and outcome.
	OperacionesBackend = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "listacompras_operaciones_backend_total",
		Help: "Operaciones contra el backend tabular por tipo y resultado.",
	}, []string{"operacion", "resultado"})

	// ListasRotadas counts listas evicted by the rotation policy.
	ListasRotadas = promauto.NewCounter(prometheus.CounterOpts{
		Name: "listacompras_listas_rotadas_total",
		Help: "Listas eliminadas automáticamente al alcanzar el máximo.",
	})
)

// Observar registers one backend round trip under op with the outcome
// derived from err.
func Observar(op string, err error) {
	resultado := "ok"
	if err != nil {
		resultado = "error"
	}
	OperacionesBackend.WithLabelValues(op, resultado).Inc()
}

// Handler exposes the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
