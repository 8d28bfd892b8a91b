package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/zhdanov/girls-backend/pkg/logger"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

// Subjects emitted by the API.
const (
	CodeRequested      = "auth.code.requested"
	CodeVerified       = "auth.code.verified"
	CertificateCreated = "certificate.created"
)

type CodeRequestedEvent struct {
	GirlID      int64     `json:"girl_id"`
	Email       string    `json:"email"`
	ExpiresAt   time.Time `json:"expires_at"`
	RequestedAt time.Time `json:"requested_at"`
}

type CodeVerifiedEvent struct {
	GirlID     int64     `json:"girl_id"`
	VerifiedAt time.Time `json:"verified_at"`
}

type CertificateCreatedEvent struct {
	GirlID    int64     `json:"girl_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSPublisher{conn: conn}, nil
}

func (n *NATSPublisher) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.WithContext(ctx).Debug("Publishing event", "subject", subject, "data", string(payload))

	return n.conn.Publish(subject, payload)
}

func (n *NATSPublisher) Close() error {
	n.conn.Close()
	return nil
}

// NoopPublisher is used when no NATS URL is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, subject string, data interface{}) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
