package mail

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SentMail records one message accepted by the mock transport.
type SentMail struct {
	MessageID string
	To        string
	Message   Message
	SentAt    time.Time
}

// MockClient simulates the mail transport: sleeps the configured latency,
// records the message, and returns a receipt. When Err is set it is returned
// after the latency instead.
type MockClient struct {
	Latency time.Duration
	Err     error

	mu   sync.Mutex
	sent []SentMail
}

func (c *MockClient) Send(_ context.Context, to string, msg Message) (Receipt, error) {
	time.Sleep(c.Latency)
	if c.Err != nil {
		return Receipt{}, c.Err
	}
	receipt := Receipt{
		MessageID: "msg_" + uuid.NewString(),
		SentAt:    time.Now(),
	}
	c.mu.Lock()
	c.sent = append(c.sent, SentMail{
		MessageID: receipt.MessageID,
		To:        to,
		Message:   msg,
		SentAt:    receipt.SentAt,
	})
	c.mu.Unlock()
	return receipt, nil
}

// Sent returns a snapshot of everything sent through this client.
func (c *MockClient) Sent() []SentMail {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]SentMail{}, c.sent...)
}
