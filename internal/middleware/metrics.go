package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zync_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// ActiveWebSockets is the gauge of currently open notification sockets.
	ActiveWebSockets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "zync_websocket_connections_active",
		Help: "Number of active WebSocket connections",
	})

	// WebSocketDrops counts messages dropped due to backpressure by hub and reason.
	WebSocketDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zync_websocket_backpressure_drops_total",
		Help: "Total number of WebSocket messages dropped due to backpressure",
	}, []string{"hub", "reason"})

	// FriendRequests counts friend-request lifecycle operations by outcome.
	FriendRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zync_friend_requests_total",
		Help: "Total friend-request operations by action and outcome",
	}, []string{"action", "outcome"})
)

// InitMetrics creates the Prometheus middleware instance for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-level Prometheus middleware handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
