package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Register mounts all API routes on the echo instance. The metrics
// handler is optional.
func Register(e *echo.Echo, h *Handler, metricsHandler http.Handler) {
	e.GET("/health", h.Health)
	if metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(metricsHandler))
	}

	api := e.Group("/api")
	api.POST("/screening", h.ScreenTransaction)
	api.POST("/screening/batch", h.ScreenBatch)
	api.GET("/transactions/:customer", h.GetCustomerTransactions)
	api.GET("/rules", h.GetRules)
	api.PUT("/rules", h.UpdateRules)
	api.GET("/audit", h.GetAuditLog)
}
