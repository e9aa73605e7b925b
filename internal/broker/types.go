package broker

import "context"

// Connection states reported by the gateway.
const (
	StateOpen       = "open"
	StateConnecting = "connecting"
	StateClose      = "close"
)

// InstanceInfo is the gateway's view of one instance.
type InstanceInfo struct {
	Status  string
	Token   string
	Phone   string
	Profile string
}

// SendOptions are the optional knobs on a text send. Every field is
// independently omittable.
type SendOptions struct {
	DelayMs     int      `json:"delay,omitempty"`
	LinkPreview *bool    `json:"linkPreview,omitempty"`
	Mentions    []string `json:"mentioned,omitempty"`
	QuotedID    string   `json:"quoted,omitempty"`
}

// Client is the gateway contract consumed by the orchestration core.
// Instance credentials are per-call because each tenant's instance
// carries its own key.
type Client interface {
	InstanceExists(ctx context.Context, name, apiKey string) (bool, error)
	CreateInstance(ctx context.Context, name, apiKey, webhookURL string) error
	ApplyFixedSettings(ctx context.Context, name, apiKey string) error
	RegisterWebhook(ctx context.Context, name, apiKey, url string) error
	GetConnectionState(ctx context.Context, name, apiKey string) (string, error)
	GetInstanceInfo(ctx context.Context, name, apiKey string) (*InstanceInfo, error)
	RequestQR(ctx context.Context, name, apiKey string) (string, error)
	Logout(ctx context.Context, name, apiKey string) error
	SendText(ctx context.Context, name, apiKey, phone, text string, opts *SendOptions) (string, error)
}
