package broker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Config holds gateway connection settings.
type Config struct {
	BaseURL string
	// AdminKey authenticates instance management calls; instance-scoped
	// calls use the per-tenant key stored on the session.
	AdminKey       string
	Timeout        int
	CircuitBreaker BreakerConfig
}

// HTTPClient is the gateway client. Sends go through a circuit breaker;
// every call carries a bounded timeout via the underlying http.Client.
type HTTPClient struct {
	cfg        *Config
	httpClient *http.Client
	logger     *zap.Logger
	breaker    *circuitBreaker
}

// NewHTTPClient creates a gateway client.
func NewHTTPClient(cfg *Config, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		logger:  logger,
		breaker: newCircuitBreaker(&cfg.CircuitBreaker, logger),
	}
}

type createInstanceRequest struct {
	InstanceName string `json:"instanceName"`
	Token        string `json:"token"`
	QRCode       bool   `json:"qrcode"`
	WebhookURL   string `json:"webhook,omitempty"`
}

type instanceSettingsRequest struct {
	GroupsIgnore    bool `json:"groupsIgnore"`
	SyncFullHistory bool `json:"syncFullHistory"`
	ReadMessages    bool `json:"readMessages"`
	AlwaysOnline    bool `json:"alwaysOnline"`
}

type setWebhookRequest struct {
	Webhook struct {
		Enabled bool     `json:"enabled"`
		URL     string   `json:"url"`
		Events  []string `json:"events"`
	} `json:"webhook"`
}

type connectionStateResponse struct {
	Instance struct {
		InstanceName string `json:"instanceName"`
		State        string `json:"state"`
	} `json:"instance"`
}

type fetchInstancesResponse []struct {
	Instance struct {
		InstanceName string `json:"instanceName"`
		Status       string `json:"status"`
		Token        string `json:"token"`
		Owner        string `json:"owner"`
		ProfileName  string `json:"profileName"`
	} `json:"instance"`
}

type connectResponse struct {
	Base64 string `json:"base64"`
	Code   string `json:"code"`
}

type sendTextRequest struct {
	Number string `json:"number"`
	Text   string `json:"text"`
	*SendOptions
}

type sendTextResponse struct {
	Key struct {
		ID string `json:"id"`
	} `json:"key"`
}

// InstanceExists reports whether the gateway knows an instance by name.
// A 404 from the state endpoint means the instance was never created.
func (c *HTTPClient) InstanceExists(ctx context.Context, name, apiKey string) (bool, error) {
	status, _, err := c.do(ctx, http.MethodGet, "/instance/connectionState/"+url.PathEscape(name), apiKey, nil)
	if err != nil {
		return false, err
	}
	if status == http.StatusNotFound {
		return false, nil
	}
	if err := c.mapStatus(status); err != nil {
		return false, err
	}
	return true, nil
}

// CreateInstance provisions a new instance named name, keyed with apiKey
// and preconfigured with the webhook URL. A 403 means the instance
// already exists and is not an error.
func (c *HTTPClient) CreateInstance(ctx context.Context, name, apiKey, webhookURL string) error {
	body := createInstanceRequest{
		InstanceName: name,
		Token:        apiKey,
		QRCode:       true,
		WebhookURL:   webhookURL,
	}

	status, _, err := c.do(ctx, http.MethodPost, "/instance/create", c.cfg.AdminKey, body)
	if err != nil {
		return err
	}
	if status == http.StatusForbidden {
		c.logger.Info("Instance already exists on broker", zap.String("instance", name))
		return nil
	}
	return c.mapStatus(status)
}

// ApplyFixedSettings pushes the settings every confirmation instance
// runs with: group chats ignored, history sync off, auto-read off.
func (c *HTTPClient) ApplyFixedSettings(ctx context.Context, name, apiKey string) error {
	body := instanceSettingsRequest{
		GroupsIgnore:    true,
		SyncFullHistory: false,
		ReadMessages:    false,
		AlwaysOnline:    false,
	}

	status, _, err := c.do(ctx, http.MethodPost, "/settings/set/"+url.PathEscape(name), apiKey, body)
	if err != nil {
		return err
	}
	return c.mapStatus(status)
}

// RegisterWebhook points the instance's event webhook at url.
func (c *HTTPClient) RegisterWebhook(ctx context.Context, name, apiKey, webhookURL string) error {
	var body setWebhookRequest
	body.Webhook.Enabled = true
	body.Webhook.URL = webhookURL
	body.Webhook.Events = []string{"QRCODE_UPDATED", "CONNECTION_UPDATE", "MESSAGES_UPSERT"}

	status, _, err := c.do(ctx, http.MethodPost, "/webhook/set/"+url.PathEscape(name), apiKey, body)
	if err != nil {
		return err
	}
	return c.mapStatus(status)
}

// GetConnectionState returns the raw gateway state (open, connecting,
// close) for an instance.
func (c *HTTPClient) GetConnectionState(ctx context.Context, name, apiKey string) (string, error) {
	status, raw, err := c.do(ctx, http.MethodGet, "/instance/connectionState/"+url.PathEscape(name), apiKey, nil)
	if err != nil {
		return "", err
	}
	if err := c.mapStatus(status); err != nil {
		return "", err
	}

	var resp connectionStateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("%w: malformed state response: %v", ErrBadGateway, err)
	}
	return resp.Instance.State, nil
}

// GetInstanceInfo returns status, token, connected phone and profile
// name for an instance.
func (c *HTTPClient) GetInstanceInfo(ctx context.Context, name, apiKey string) (*InstanceInfo, error) {
	path := "/instance/fetchInstances?instanceName=" + url.QueryEscape(name)
	status, raw, err := c.do(ctx, http.MethodGet, path, apiKey, nil)
	if err != nil {
		return nil, err
	}
	if err := c.mapStatus(status); err != nil {
		return nil, err
	}

	var resp fetchInstancesResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: malformed instance response: %v", ErrBadGateway, err)
	}
	if len(resp) == 0 {
		return nil, fmt.Errorf("%w: instance %s not found", ErrBadGateway, name)
	}

	inst := resp[0].Instance
	return &InstanceInfo{
		Status:  inst.Status,
		Token:   inst.Token,
		Phone:   inst.Owner,
		Profile: inst.ProfileName,
	}, nil
}

// RequestQR asks the gateway for a fresh pairing QR code. An already
// connected instance returns no QR, which is not an error.
func (c *HTTPClient) RequestQR(ctx context.Context, name, apiKey string) (string, error) {
	status, raw, err := c.do(ctx, http.MethodGet, "/instance/connect/"+url.PathEscape(name), apiKey, nil)
	if err != nil {
		return "", err
	}
	if err := c.mapStatus(status); err != nil {
		return "", err
	}

	var resp connectResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("%w: malformed connect response: %v", ErrBadGateway, err)
	}
	return resp.Base64, nil
}

// Logout disconnects the instance's WhatsApp session on the gateway.
func (c *HTTPClient) Logout(ctx context.Context, name, apiKey string) error {
	status, _, err := c.do(ctx, http.MethodDelete, "/instance/logout/"+url.PathEscape(name), apiKey, nil)
	if err != nil {
		return err
	}
	return c.mapStatus(status)
}

// SendText sends a plain text message through the instance and returns
// the gateway message id. The call runs through the circuit breaker.
func (c *HTTPClient) SendText(ctx context.Context, name, apiKey, phoneNumber, text string, opts *SendOptions) (string, error) {
	body := sendTextRequest{
		Number:      phoneNumber,
		Text:        text,
		SendOptions: opts,
	}

	var messageID string
	err := c.breaker.execute(ctx, func() error {
		status, raw, err := c.do(ctx, http.MethodPost, "/message/sendText/"+url.PathEscape(name), apiKey, body)
		if err != nil {
			return err
		}
		if err := c.mapStatus(status); err != nil {
			return err
		}

		var resp sendTextResponse
		if err := json.Unmarshal(raw, &resp); err != nil {
			// Some gateway versions answer 201 with an empty body.
			messageID = fmt.Sprintf("local-%d", time.Now().UnixNano())
			return nil
		}
		messageID = resp.Key.ID
		return nil
	})
	if err != nil {
		return "", err
	}

	return messageID, nil
}

// BreakerStatus exposes the send-path circuit breaker for the health
// surface.
func (c *HTTPClient) BreakerStatus() (BreakerState, uint32, uint32) {
	requests, failures := c.breaker.counts()
	return c.breaker.state(), requests, failures
}

// do performs one HTTP round trip and returns the status code and body.
// Transport failures map to ErrUnavailable; status mapping is left to
// the caller because some endpoints treat specific codes as data.
func (c *HTTPClient) do(ctx context.Context, method, path, apiKey string, body interface{}) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close response body", zap.Error(closeErr))
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: reading response: %v", ErrBadGateway, err)
	}

	return resp.StatusCode, raw, nil
}

// mapStatus converts a non-2xx status code into the error taxonomy.
func (c *HTTPClient) mapStatus(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusBadRequest || status == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrMisconfigured, status)
	default:
		return fmt.Errorf("%w: status %d", ErrBadGateway, status)
	}
}
