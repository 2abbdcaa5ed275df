package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopleops/employee-registry/internal/handler"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandlerHealthy(t *testing.T) {
	h := handler.NewHealthHandler(stubPinger{}, "employee-registry", "1.0.0")

	rec := doJSON(t, h.HealthHandler, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "running", resp["status"])
	assert.Equal(t, "1.0.0", resp["version"])
	assert.Equal(t, "healthy", resp["database"])
}

func TestHealthHandlerUnhealthyStillResponds(t *testing.T) {
	h := handler.NewHealthHandler(stubPinger{err: errors.New("connection refused")}, "employee-registry", "1.0.0")

	rec := doJSON(t, h.HealthHandler, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "running", resp["status"])
	assert.Contains(t, resp["database"], "unhealthy")
}

func TestRootHandlerListsEndpoints(t *testing.T) {
	h := handler.NewHealthHandler(stubPinger{}, "employee-registry", "1.0.0")

	rec := doJSON(t, h.RootHandler, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "POST /employees")
}
