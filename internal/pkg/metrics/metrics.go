package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RidesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace", Name: "rides_created_total", Help: "Total rides created"})
	RidesAssignedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace", Name: "rides_assigned_total", Help: "Total ride assignments"})
	RidesTransferredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace", Name: "rides_transferred_total", Help: "Total ride transfers"})
	RidesCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace", Name: "rides_completed_total", Help: "Total rides completed"})
	RidesCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace", Name: "rides_cancelled_total", Help: "Total rides cancelled"})
	TransferConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace", Name: "transfer_conflicts_total", Help: "Transfers rejected by the version guard"})
	WebhookDispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "marketplace", Name: "webhook_dispatch_total", Help: "Outbound webhook dispatch attempts"},
		[]string{"type", "outcome"},
	)
	DriversAvailable = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "marketplace", Name: "drivers_available", Help: "Drivers currently flagged available"})
)

// RegisterEndpoint exposes the Prometheus scrape endpoint on the server
func RegisterEndpoint(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
