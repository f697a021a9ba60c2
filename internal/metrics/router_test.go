package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Egor213/RosoutDiag/internal/metrics"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestConfigureRouter(t *testing.T) {
	e := echo.New()
	metrics.ConfigureRouter(e)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
