package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores de la sincronización con el ticket store. Se exponen en
// /metrics cuando PROMETHEUS_ENABLED=true.
var (
	TicketSyncRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "motoshop_ticket_sync_requests_total",
		Help: "Llamadas al ticket store remoto por operación",
	}, []string{"operation"})

	TicketSyncFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "motoshop_ticket_sync_failures_total",
		Help: "Fallas de red o de negocio contra el ticket store por operación",
	}, []string{"operation"})
)
