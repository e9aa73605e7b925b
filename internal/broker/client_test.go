package broker_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zapagenda/zap-confirm/internal/broker"
)

func newTestClient(serverURL string) *broker.HTTPClient {
	return broker.NewHTTPClient(&broker.Config{
		BaseURL:  serverURL,
		AdminKey: "admin-key",
		Timeout:  5,
		CircuitBreaker: broker.BreakerConfig{
			MaxRequests:      3,
			Interval:         60,
			Timeout:          60,
			FailureRatio:     0.6,
			ConsecutiveFails: 5,
		},
	}, zap.NewNop())
}

func TestHTTPClient_InstanceExists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "instance-key", r.Header.Get("apikey"))
		switch r.URL.Path {
		case "/instance/connectionState/tenant_1":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"instance": map[string]string{"instanceName": "tenant_1", "state": "open"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	exists, err := client.InstanceExists(context.Background(), "tenant_1", "instance-key")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = client.InstanceExists(context.Background(), "tenant_2", "instance-key")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestHTTPClient_CreateInstance_ForbiddenMeansExists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/instance/create", r.URL.Path)
		assert.Equal(t, "admin-key", r.Header.Get("apikey"))
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.CreateInstance(context.Background(), "tenant_1", "instance-key", "https://example.com/webhook/1")
	assert.NoError(t, err)
}

func TestHTTPClient_GetConnectionState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"instance": map[string]string{"instanceName": "tenant_1", "state": "connecting"},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	state, err := client.GetConnectionState(context.Background(), "tenant_1", "instance-key")
	require.NoError(t, err)
	assert.Equal(t, broker.StateConnecting, state)
}

func TestHTTPClient_GetInstanceInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tenant_1", r.URL.Query().Get("instanceName"))
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"instance": map[string]string{
				"instanceName": "tenant_1",
				"status":       "open",
				"token":        "session-token",
				"owner":        "5511987654321",
				"profileName":  "Clínica Sorriso",
			}},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	info, err := client.GetInstanceInfo(context.Background(), "tenant_1", "instance-key")
	require.NoError(t, err)
	assert.Equal(t, "open", info.Status)
	assert.Equal(t, "session-token", info.Token)
	assert.Equal(t, "5511987654321", info.Phone)
	assert.Equal(t, "Clínica Sorriso", info.Profile)
}

func TestHTTPClient_SendText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/message/sendText/tenant_1", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "5511987654321", req["number"])
		assert.Equal(t, "Olá!", req["text"])
		assert.Equal(t, float64(1200), req["delay"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"key": map[string]string{"id": "BAE5F4A9"},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	id, err := client.SendText(context.Background(), "tenant_1", "instance-key", "5511987654321", "Olá!", &broker.SendOptions{DelayMs: 1200})
	require.NoError(t, err)
	assert.Equal(t, "BAE5F4A9", id)
}

func TestHTTPClient_SendText_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.SendText(context.Background(), "tenant_1", "instance-key", "5511987654321", "Olá!", nil)
	assert.ErrorIs(t, err, broker.ErrBadGateway)
}

func TestHTTPClient_ErrorTaxonomy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.Logout(context.Background(), "tenant_1", "bad-key")
	assert.ErrorIs(t, err, broker.ErrMisconfigured)

	// Unreachable gateway maps to unavailable.
	down := newTestClient("http://127.0.0.1:1")
	_, err = down.GetConnectionState(context.Background(), "tenant_1", "instance-key")
	assert.ErrorIs(t, err, broker.ErrUnavailable)
}
