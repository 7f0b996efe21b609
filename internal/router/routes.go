package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/octobees/query-classifier/api/internal/handler"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Query *handler.QueryHandler
	// Metrics serves the Prometheus exposition; defaults to promhttp.Handler().
	Metrics http.Handler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, handlers Handlers) {
	e.Pre(echoMiddleware.AddTrailingSlashWithConfig(echoMiddleware.TrailingSlashConfig{
		RedirectCode: http.StatusTemporaryRedirect,
		Skipper: func(c echo.Context) bool {
			switch c.Request().URL.Path {
			case "/healthz", "/metrics":
				return true
			}
			return false
		},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	metricsHandler := handlers.Metrics
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	e.GET("/metrics", echo.WrapHandler(metricsHandler))

	q := handlers.Query
	e.GET("/classify_query/", q.Classify)
	e.GET("/classify_query/process_address/", q.ProcessAddress)
	e.GET("/classify_query/process_category/", q.ProcessCategory)
	e.GET("/classify_query/process_quantity/", q.ProcessQuantity)
	e.GET("/classify_query/process_brand/", q.ProcessBrand)
	e.GET("/classify_query/process_distance/", q.ProcessDistance)
	e.GET("/classify_query/process_location_with_reference/", q.ProcessLocationWithReference)
	e.GET("/process_query/", q.Process)
}
