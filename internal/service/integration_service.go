package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WebhookEvent enumerates the outbound notification kinds. A closed set of
// constants keeps typo'd event names from silently producing events no
// consumer matches.
type WebhookEvent string

const (
	WebhookVendorCreated  WebhookEvent = "vendor.created"
	WebhookVendorUpdated  WebhookEvent = "vendor.updated"
	WebhookVendorDeleted  WebhookEvent = "vendor.deleted"
	WebhookVendorImported WebhookEvent = "vendor.imported"
)

// VendorStatusActive is the only status the integration schema reports:
// there is no persisted status field yet, so every vendor surfaces as
// active. A real status lifecycle needs a migration first.
const VendorStatusActive = "active"

const webhookSource = "vendorgrid"

// --- Integration DTOs ---

type IntegrationVendor struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	TaxID        string    `json:"tax_id"`
	Status       string    `json:"status"`
	Address      string    `json:"address"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type VendorChange struct {
	VendorID   uint              `json:"vendor_id"`
	ChangeType string            `json:"change_type"`
	Timestamp  time.Time         `json:"timestamp"`
	VendorData IntegrationVendor `json:"vendor_data"`
}

type VendorChangesPage struct {
	Changes        []VendorChange `json:"changes"`
	TotalChanges   int            `json:"total_changes"`
	SinceTimestamp time.Time      `json:"since_timestamp"`
	Page           int            `json:"page"`
	PageSize       int            `json:"page_size"`
	TotalPages     int            `json:"total_pages"`
}

type WebhookPayload struct {
	EventType WebhookEvent           `json:"event_type"`
	EventID   string                 `json:"event_id"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
	Source    string                 `json:"source"`
}

type HealthStatus struct {
	Status       string     `json:"status"`
	Service      string     `json:"service"`
	Timestamp    time.Time  `json:"timestamp"`
	TotalVendors *int       `json:"total_vendors,omitempty"`
	LastUpdated  *time.Time `json:"last_updated,omitempty"`
}

type APIKeyValidation struct {
	Valid     bool       `json:"valid"`
	Message   string     `json:"message"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// --- Interface ---

type IntegrationService interface {
	GetVendorsForIntegration(ctx context.Context) ([]IntegrationVendor, error)
	GetVendorChangesSince(ctx context.Context, since time.Time, page, pageSize int) (VendorChangesPage, error)
	SendWebhookNotification(ctx context.Context, event WebhookEvent, data map[string]interface{}) bool
	NotifyVendorCreated(ctx context.Context, vendor VendorResponse)
	NotifyVendorUpdated(ctx context.Context, vendor VendorResponse)
	NotifyVendorDeleted(ctx context.Context, vendorID uint)
	NotifyImportCompleted(ctx context.Context, result ImportResult)
	ValidateAPIKey(key string) APIKeyValidation
	HealthStatus(ctx context.Context) HealthStatus
	Close()
}

// --- Implementation ---

type integrationService struct {
	vendorService  VendorService
	webhookURL     string
	webhookTimeout time.Duration
	logger         *zap.Logger

	clientOnce sync.Once
	client     *http.Client
}

// NewIntegrationService wraps a VendorService with the read-oriented
// integration facade. webhookURL may be empty, in which case notifications
// are no-op successes.
func NewIntegrationService(vendorService VendorService, webhookURL string, webhookTimeout time.Duration, logger *zap.Logger) IntegrationService {
	return &integrationService{
		vendorService:  vendorService,
		webhookURL:     webhookURL,
		webhookTimeout: webhookTimeout,
		logger:         logger,
	}
}

func (s *integrationService) GetVendorsForIntegration(ctx context.Context) ([]IntegrationVendor, error) {
	vendors, err := s.vendorService.GetAllVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vendors for integration: %w", err)
	}

	res := make([]IntegrationVendor, 0, len(vendors))
	for _, v := range vendors {
		res = append(res, toIntegrationVendor(v))
	}
	return res, nil
}

// GetVendorChangesSince derives a delta feed from updated_at timestamps:
// every vendor touched strictly after the given instant is reported as a
// single synthetic "updated" change. Deletions leave no row behind and are
// therefore invisible to this feed.
func (s *integrationService) GetVendorChangesSince(ctx context.Context, since time.Time, page, pageSize int) (VendorChangesPage, error) {
	page, pageSize = clampPage(page, pageSize)

	vendors, err := s.vendorService.GetAllVendors(ctx)
	if err != nil {
		return VendorChangesPage{}, fmt.Errorf("failed to fetch vendor changes: %w", err)
	}

	var changed []VendorResponse
	for _, v := range vendors {
		if v.UpdatedAt.After(since) {
			changed = append(changed, v)
		}
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(changed) {
		start = len(changed)
	}
	if end > len(changed) {
		end = len(changed)
	}

	changes := make([]VendorChange, 0, end-start)
	for _, v := range changed[start:end] {
		changes = append(changes, VendorChange{
			VendorID:   v.ID,
			ChangeType: "updated",
			Timestamp:  v.UpdatedAt,
			VendorData: toIntegrationVendor(v),
		})
	}

	return VendorChangesPage{
		Changes:        changes,
		TotalChanges:   len(changed),
		SinceTimestamp: since,
		Page:           page,
		PageSize:       pageSize,
		TotalPages:     totalPages(int64(len(changed)), pageSize),
	}, nil
}

// SendWebhookNotification delivers a single best-effort POST. An unset
// webhook URL counts as success (nothing to deliver); transport failures
// and non-2xx responses are logged and reported only through the boolean.
func (s *integrationService) SendWebhookNotification(ctx context.Context, event WebhookEvent, data map[string]interface{}) bool {
	if s.webhookURL == "" {
		s.logger.Debug("webhook URL not configured, skipping notification",
			zap.String("event_type", string(event)))
		return true
	}

	payload := WebhookPayload{
		EventType: event,
		EventID:   uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Data:      data,
		Source:    webhookSource,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("failed to encode webhook payload", zap.Error(err))
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		s.logger.Error("failed to build webhook request", zap.Error(err))
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient().Do(req)
	if err != nil {
		s.logger.Error("webhook delivery failed",
			zap.String("event_type", string(event)), zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Warn("webhook delivery rejected",
			zap.String("event_type", string(event)),
			zap.Int("status", resp.StatusCode))
		return false
	}

	s.logger.Info("webhook notification sent",
		zap.String("event_type", string(event)),
		zap.String("event_id", payload.EventID))
	return true
}

func (s *integrationService) NotifyVendorCreated(ctx context.Context, vendor VendorResponse) {
	s.SendWebhookNotification(ctx, WebhookVendorCreated, map[string]interface{}{
		"vendor": toIntegrationVendor(vendor),
	})
}

func (s *integrationService) NotifyVendorUpdated(ctx context.Context, vendor VendorResponse) {
	s.SendWebhookNotification(ctx, WebhookVendorUpdated, map[string]interface{}{
		"vendor": toIntegrationVendor(vendor),
	})
}

func (s *integrationService) NotifyVendorDeleted(ctx context.Context, vendorID uint) {
	s.SendWebhookNotification(ctx, WebhookVendorDeleted, map[string]interface{}{
		"vendor_id": vendorID,
	})
}

func (s *integrationService) NotifyImportCompleted(ctx context.Context, result ImportResult) {
	s.SendWebhookNotification(ctx, WebhookVendorImported, map[string]interface{}{
		"total_rows":    result.TotalRows,
		"success_count": result.SuccessCount,
		"error_count":   result.ErrorCount,
	})
}

// ValidateAPIKey accepts any non-blank key with no expiry. This is a
// placeholder until keys live in a credential store; it is not a security
// boundary.
func (s *integrationService) ValidateAPIKey(key string) APIKeyValidation {
	if strings.TrimSpace(key) != "" {
		return APIKeyValidation{Valid: true, Message: "API key is valid"}
	}
	return APIKeyValidation{Valid: false, Message: "Invalid or missing API key"}
}

// HealthStatus reports vendor count and the most recent update. A failing
// lookup degrades the status instead of returning an error.
func (s *integrationService) HealthStatus(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Service:   "VendorGrid Integration",
		Timestamp: time.Now().UTC(),
	}

	vendors, err := s.vendorService.GetAllVendors(ctx)
	if err != nil {
		s.logger.Error("integration health check failed", zap.Error(err))
		status.Status = "unhealthy"
		return status
	}

	status.Status = "healthy"
	total := len(vendors)
	status.TotalVendors = &total
	for _, v := range vendors {
		if status.LastUpdated == nil || v.UpdatedAt.After(*status.LastUpdated) {
			t := v.UpdatedAt
			status.LastUpdated = &t
		}
	}
	return status
}

// Close releases the outbound webhook connections held by the shared client.
func (s *integrationService) Close() {
	if s.client != nil {
		s.client.CloseIdleConnections()
	}
}

// httpClient lazily builds the long-lived outbound client so repeated
// deliveries reuse pooled connections.
func (s *integrationService) httpClient() *http.Client {
	s.clientOnce.Do(func() {
		s.client = &http.Client{Timeout: s.webhookTimeout}
	})
	return s.client
}

func toIntegrationVendor(v VendorResponse) IntegrationVendor {
	return IntegrationVendor{
		ID:           v.ID,
		Name:         v.Name,
		TaxID:        v.TaxID,
		Status:       VendorStatusActive,
		Address:      v.Address,
		ContactEmail: v.ContactEmail,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
