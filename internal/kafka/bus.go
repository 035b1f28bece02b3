package kafka

import (
	"context"
	"encoding/json"
	"time"
)

type Bus interface {
	Publish(ctx context.Context, topic string, msgType string, payload any) error
}

// Envelope wraps every published payload. CorrelationID is the request id
// of the HTTP call that caused the event, when there was one.
type Envelope struct {
	MessageID     string          `json:"messageId"`
	CorrelationID string          `json:"correlationId,omitempty"`
	Type          string          `json:"type"`
	OccurredAt    time.Time       `json:"occurredAt"`
	Payload       json.RawMessage `json:"payload"`
}
