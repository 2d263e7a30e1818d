package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// OrdersPlaced counts place-order outcomes by result
	// ("success", "rejected", "failed").
	OrdersPlaced = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "executor_orders_placed_total",
		Help: "place order results",
	}, []string{"result"})

	// OrderRetries counts transient-failure retries of place calls.
	OrderRetries = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "executor_order_retries_total",
		Help: "place order retry attempts",
	})

	// AuthRefreshes counts successful loginKey authentications.
	AuthRefreshes = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "executor_auth_refresh_total",
		Help: "session token refreshes",
	})
)

func init() {
	prometheus.MustRegister(OrdersPlaced, OrderRetries, AuthRefreshes)
}
