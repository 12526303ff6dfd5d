package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"erp/internal/config"
	"erp/internal/server"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestWelcomeRoute(t *testing.T) {
	e := server.New(config.Config{FEOrigins: []string{"http://localhost:5173"}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Contains(t, got["message"], "Welcome")
}

// 未定義ルートはJSONの404
func TestUnknownRoute_JSON404(t *testing.T) {
	e := server.New(config.Config{FEOrigins: []string{"http://localhost:5173"}})

	req := httptest.NewRequest(http.MethodGet, "/api/payroll", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var got map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, false, got["success"])
	assert.Equal(t, "Route not found", got["message"])
}

func TestRequestIDHeaderSet(t *testing.T) {
	e := server.New(config.Config{FEOrigins: []string{"http://localhost:5173"}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}
