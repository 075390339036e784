package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vendorgrid/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newIntegrationTestRouter(is service.IntegrationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewIntegrationHandler(is, zap.NewNop()).RegisterRoutes(router.Group(""))
	return router
}

func TestIntegrationVendors_RequiresAPIKey(t *testing.T) {
	router := newIntegrationTestRouter(stubIntegrationService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/integration/vendors", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/integration/vendors", nil)
	req.Header.Set("X-API-Key", "demo-key")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIntegrationChanges_BadTimestamp(t *testing.T) {
	router := newIntegrationTestRouter(stubIntegrationService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/integration/vendors/changes?since=not-a-date", nil)
	req.Header.Set("X-API-Key", "demo-key")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIntegrationChanges_MissingTimestamp(t *testing.T) {
	router := newIntegrationTestRouter(stubIntegrationService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/integration/vendors/changes", nil)
	req.Header.Set("X-API-Key", "demo-key")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIntegrationChanges_AcceptsRFC3339(t *testing.T) {
	router := newIntegrationTestRouter(stubIntegrationService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/integration/vendors/changes?since=2024-06-01T12:00:00Z", nil)
	req.Header.Set("X-API-Key", "demo-key")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookTest_EchoesMessage(t *testing.T) {
	router := newIntegrationTestRouter(stubIntegrationService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/integration/webhooks/test",
		strings.NewReader(`{"test_message":"ping"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", "demo-key")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp WebhookTestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "ping", resp.Message)
}

func TestWebhookTest_DefaultMessage(t *testing.T) {
	router := newIntegrationTestRouter(stubIntegrationService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/integration/webhooks/test", nil)
	req.Header.Set("X-API-Key", "demo-key")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp WebhookTestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Webhook test successful", resp.Message)
}

func TestReceiveWebhook_AcknowledgesWithoutAuth(t *testing.T) {
	router := newIntegrationTestRouter(stubIntegrationService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/integration/webhooks/vendor.synced",
		strings.NewReader(`{"some":"payload"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "received", resp["status"])
	assert.Equal(t, "vendor.synced", resp["event_type"])
}

func TestIntegrationHealth_Unauthenticated(t *testing.T) {
	router := newIntegrationTestRouter(stubIntegrationService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/integration/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var status service.HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "healthy", status.Status)
}

func TestValidateAPIKeyEndpoint(t *testing.T) {
	router := newIntegrationTestRouter(stubIntegrationService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/integration/auth/validate",
		strings.NewReader(`{"api_key":"demo-key"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var validation service.APIKeyValidation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &validation))
	assert.True(t, validation.Valid)
}
