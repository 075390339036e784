package handler

import (
	"net/http"
	"time"

	"vendorgrid/internal/middleware"
	"vendorgrid/internal/service"
	"vendorgrid/pkg/pagination"
	"vendorgrid/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IntegrationHandler struct {
	integrationService service.IntegrationService
	logger             *zap.Logger
}

func NewIntegrationHandler(integrationService service.IntegrationService, logger *zap.Logger) *IntegrationHandler {
	return &IntegrationHandler{integrationService: integrationService, logger: logger}
}

func (h *IntegrationHandler) RegisterRoutes(router *gin.RouterGroup) {
	integration := router.Group("/api/integration")
	{
		apiKey := middleware.RequireAPIKey(h.integrationService)

		integration.GET("/vendors", apiKey, h.ListVendors)
		integration.GET("/vendors/changes", apiKey, h.GetVendorChanges)
		integration.POST("/webhooks/test", apiKey, h.TestWebhook)
		integration.POST("/webhooks/:event_type", h.ReceiveWebhook)
		integration.GET("/health", h.HealthCheck)
		integration.POST("/auth/validate", h.ValidateAPIKey)
	}
}

// ListVendors returns all vendors in the integration schema
// @Summary      List vendors for integration
// @Tags         integration
// @Produce      json
// @Param        X-API-Key  header  string  true  "Integration API key"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /api/integration/vendors [get]
func (h *IntegrationHandler) ListVendors(c *gin.Context) {
	vendors, err := h.integrationService.GetVendorsForIntegration(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to fetch vendors for integration", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to retrieve vendor data"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, vendors))
}

// GetVendorChanges returns vendors modified after the given timestamp
// @Summary      Get vendor changes since timestamp
// @Tags         integration
// @Produce      json
// @Param        X-API-Key  header  string  true   "Integration API key"
// @Param        since      query   string  true   "ISO 8601 timestamp"
// @Param        page       query   int     false  "Page number (default: 1)"
// @Param        page_size  query   int     false  "Items per page (default: 50, max: 100)"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/integration/vendors/changes [get]
func (h *IntegrationHandler) GetVendorChanges(c *gin.Context) {
	sinceParam := c.Query("since")
	if sinceParam == "" {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "since timestamp is required"))
		return
	}

	since, err := time.Parse(time.RFC3339, sinceParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid timestamp format: "+err.Error()))
		return
	}

	p := pagination.Parse(c)
	changes, err := h.integrationService.GetVendorChangesSince(c.Request.Context(), since, p.Page, p.PageSize)
	if err != nil {
		h.logger.Error("failed to fetch vendor changes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to retrieve change data"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, changes))
}

type WebhookTestRequest struct {
	TestMessage string `json:"test_message"`
}

type WebhookTestResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// TestWebhook lets external systems verify their webhook configuration
// @Summary      Test webhook connectivity
// @Tags         integration
// @Accept       json
// @Produce      json
// @Param        X-API-Key  header  string              true   "Integration API key"
// @Param        payload    body    WebhookTestRequest  false  "Optional test message"
// @Success      200  {object}  WebhookTestResponse
// @Router       /api/integration/webhooks/test [post]
func (h *IntegrationHandler) TestWebhook(c *gin.Context) {
	var req WebhookTestRequest
	// Body is optional; ignore bind failures and fall back to the default message.
	_ = c.ShouldBindJSON(&req)

	message := req.TestMessage
	if message == "" {
		message = "Webhook test successful"
	}

	c.JSON(http.StatusOK, WebhookTestResponse{
		Status:    "success",
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

// ReceiveWebhook accepts inbound webhook events and acknowledges them
// @Summary      Receive inbound webhook
// @Tags         integration
// @Accept       json
// @Produce      json
// @Param        event_type  path  string  true  "Event type"
// @Success      200  {object}  map[string]string
// @Router       /api/integration/webhooks/{event_type} [post]
func (h *IntegrationHandler) ReceiveWebhook(c *gin.Context) {
	eventType := c.Param("event_type")

	var payload map[string]interface{}
	_ = c.ShouldBindJSON(&payload)

	// Acknowledged only; no processing behind this endpoint yet.
	h.logger.Info("received webhook event", zap.String("event_type", eventType))
	c.JSON(http.StatusOK, gin.H{"status": "received", "event_type": eventType})
}

// HealthCheck reports integration service health
// @Summary      Integration health check
// @Tags         integration
// @Produce      json
// @Success      200  {object}  service.HealthStatus
// @Router       /api/integration/health [get]
func (h *IntegrationHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, h.integrationService.HealthStatus(c.Request.Context()))
}

type APIKeyValidateRequest struct {
	APIKey string `json:"api_key"`
}

// ValidateAPIKey checks an API key, used for debugging key setup
// @Summary      Validate API key
// @Tags         integration
// @Accept       json
// @Produce      json
// @Param        payload  body  APIKeyValidateRequest  true  "API key to validate"
// @Success      200  {object}  service.APIKeyValidation
// @Failure      400  {object}  response.Response
// @Router       /api/integration/auth/validate [post]
func (h *IntegrationHandler) ValidateAPIKey(c *gin.Context) {
	var req APIKeyValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	c.JSON(http.StatusOK, h.integrationService.ValidateAPIKey(req.APIKey))
}
