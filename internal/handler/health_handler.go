package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/employee-registry/internal/logger"
)

// Pinger is the slice of the store the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store   Pinger
	appName string
	version string
}

func NewHealthHandler(store Pinger, appName, version string) *HealthHandler {
	return &HealthHandler{store: store, appName: appName, version: version}
}

// HealthHandler pings the store and reports its status without affecting
// request handling elsewhere.
func (h *HealthHandler) HealthHandler(c echo.Context) error {
	ctx := c.Request().Context()
	logger.DebugLog(ctx, "Health check requested")

	dbStatus := "healthy"
	if err := h.store.Ping(ctx); err != nil {
		dbStatus = "unhealthy: " + err.Error()
		logger.ErrorLog(ctx, "Database health check failed", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "running",
		"version":  h.version,
		"database": dbStatus,
	})
}

// RootHandler returns API information for discovery.
func (h *HealthHandler) RootHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Welcome to " + h.appName,
		"version": h.version,
		"endpoints": map[string]string{
			"create_employee":  "POST /employees",
			"list_employees":   "GET /employees?page=1&limit=10",
			"get_employee":     "GET /employees/{employee_id}",
			"update_employee":  "PATCH /employees/{employee_id}",
			"delete_employee":  "DELETE /employees/{employee_id}",
			"list_departments": "GET /employees/meta/departments",
		},
	})
}
