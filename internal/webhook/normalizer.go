package webhook

import (
	"encoding/json"
	"fmt"
	"strings"
)

// minimalEnvelope is the original payload shape: just an event name and
// an opaque data object.
type minimalEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// providerEnvelope is the fuller shape later broker versions emit. Data
// is carried the same way; the extra routing fields identify which
// shape arrived.
type providerEnvelope struct {
	Event       string          `json:"event"`
	Instance    string          `json:"instance"`
	Data        json.RawMessage `json:"data"`
	Destination string          `json:"destination"`
	DateTime    string          `json:"date_time"`
	Sender      string          `json:"sender"`
	ServerURL   string          `json:"server_url"`
	APIKey      string          `json:"apikey"`
}

type qrData struct {
	QRCode struct {
		Base64 string `json:"base64"`
		Code   string `json:"code"`
	} `json:"qrcode"`
	// Older payloads put the base64 string at the top level.
	Base64 string `json:"base64"`
}

type connectionData struct {
	Instance string `json:"instance"`
	State    string `json:"state"`
}

type messageData struct {
	Key *struct {
		RemoteJID   string `json:"remoteJid"`
		FromMe      bool   `json:"fromMe"`
		ID          string `json:"id"`
		Participant string `json:"participant"`
	} `json:"key"`
	PushName string `json:"pushName"`
	Message  *struct {
		Conversation        string `json:"conversation"`
		ExtendedTextMessage *struct {
			Text string `json:"text"`
		} `json:"extendedTextMessage"`
	} `json:"message"`
}

const groupJIDSuffix = "@g.us"

// Normalize decodes a raw webhook payload in either historical envelope
// shape and returns the canonical event. Unknown event names and
// filtered messages produce KindIgnored, never an error; an error means
// the payload itself is unusable.
func Normalize(raw []byte) (*Event, error) {
	var full providerEnvelope
	if err := json.Unmarshal(raw, &full); err != nil {
		return nil, fmt.Errorf("failed to decode webhook payload: %w", err)
	}

	if full.Event == "" {
		// Fall back to the minimal shape; it decodes into the same
		// fields, so an empty event name here means neither shape.
		var minimal minimalEnvelope
		if err := json.Unmarshal(raw, &minimal); err != nil || minimal.Event == "" {
			return &Event{Kind: KindIgnored}, nil
		}
		full.Event = minimal.Event
		full.Data = minimal.Data
	}

	event := &Event{Instance: full.Instance}

	switch normalizeEventName(full.Event) {
	case KindQRUpdated:
		return normalizeQR(event, full.Data)
	case KindConnectionUpdate:
		return normalizeConnection(event, full.Data)
	case KindMessageReceived:
		return normalizeMessage(event, full.Data)
	default:
		event.Kind = KindIgnored
		return event, nil
	}
}

// normalizeEventName maps both historical spellings of an event name
// (dotted lower-case and SCREAMING_SNAKE) onto the canonical kind.
func normalizeEventName(name string) EventKind {
	canonical := strings.ReplaceAll(strings.ToLower(name), "_", ".")
	switch canonical {
	case "qrcode.updated":
		return KindQRUpdated
	case "connection.update":
		return KindConnectionUpdate
	case "messages.upsert":
		return KindMessageReceived
	default:
		return KindIgnored
	}
}

func normalizeQR(event *Event, data json.RawMessage) (*Event, error) {
	var qr qrData
	if err := json.Unmarshal(data, &qr); err != nil {
		return nil, fmt.Errorf("failed to decode qrcode data: %w", err)
	}

	base64 := qr.QRCode.Base64
	if base64 == "" {
		base64 = qr.Base64
	}

	event.Kind = KindQRUpdated
	event.QR = &QRUpdated{Base64: base64}
	return event, nil
}

func normalizeConnection(event *Event, data json.RawMessage) (*Event, error) {
	var conn connectionData
	if err := json.Unmarshal(data, &conn); err != nil {
		return nil, fmt.Errorf("failed to decode connection data: %w", err)
	}

	if event.Instance == "" {
		event.Instance = conn.Instance
	}

	event.Kind = KindConnectionUpdate
	event.Connection = &ConnectionUpdate{State: conn.State}
	return event, nil
}

func normalizeMessage(event *Event, data json.RawMessage) (*Event, error) {
	var msg messageData
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to decode message data: %w", err)
	}

	if msg.Key == nil && msg.Message == nil {
		return nil, ErrMalformedMessage
	}

	// Self-origin and group messages are dropped, not errors.
	if msg.Key != nil {
		if msg.Key.FromMe {
			event.Kind = KindIgnored
			return event, nil
		}
		if strings.HasSuffix(msg.Key.RemoteJID, groupJIDSuffix) {
			event.Kind = KindIgnored
			return event, nil
		}
	}

	text := ""
	if msg.Message != nil {
		// The plain conversation field wins over the extended form.
		text = msg.Message.Conversation
		if text == "" && msg.Message.ExtendedTextMessage != nil {
			text = msg.Message.ExtendedTextMessage.Text
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		event.Kind = KindIgnored
		return event, nil
	}

	received := &MessageReceived{
		PushName: msg.PushName,
		Text:     text,
	}
	if msg.Key != nil {
		received.MessageID = msg.Key.ID
		received.RemoteJID = msg.Key.RemoteJID
		received.SenderJID = msg.Key.RemoteJID
	}

	event.Kind = KindMessageReceived
	event.Message = received
	return event, nil
}
