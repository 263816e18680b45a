package http

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staffing_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	jobTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staffing_job_transitions_total",
		Help: "Job post lifecycle transitions by kind.",
	}, []string{"transition"})

	checkoutDeliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staffing_checkout_deliveries_total",
		Help: "Checkout report deliveries by outcome.",
	}, []string{"outcome"})
)

// metricsMiddleware counts every request by its registered route pattern so
// path parameters do not explode the label set.
func metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		err := next(ctx)

		status := ctx.Response().Status
		if err != nil {
			if httpErr, ok := err.(*echo.HTTPError); ok {
				status = httpErr.Code
			}
		}

		httpRequestsTotal.WithLabelValues(
			ctx.Request().Method,
			ctx.Path(),
			strconv.Itoa(status),
		).Inc()

		return err
	}
}
