package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics exposed on /metrics.
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "status"},
	)

	OrdersCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of orders placed through the storefront endpoint",
		},
	)

	EventsBroadcastTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "realtime_events_broadcast_total",
			Help: "Total number of realtime events broadcast to websocket clients",
		},
	)

	WebsocketClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "realtime_websocket_clients",
			Help: "Number of currently connected websocket clients",
		},
	)

	StatusTransitionsRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_status_transitions_rejected_total",
			Help: "Total number of order status updates rejected by the workflow",
		},
	)
)

// Register installs all collectors into the default registry. Call once at
// server startup.
func Register() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		OrdersCreatedTotal,
		EventsBroadcastTotal,
		WebsocketClients,
		StatusTransitionsRejectedTotal,
	)
}
