package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/lokamart/lokamart/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer wraps a single NATS subscription. Unsubscribe is
// synchronous: after it returns no further messages are delivered.
type Consumer struct {
	subscription *nats.Subscription
	subject      string
}

// NewConsumer subscribes to a subject on an existing connection,
// optionally as part of a queue group.
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	cb := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Debug("Error processing message",
				logger.String("subject", subject),
				logger.Err(err))
		}
	}

	var (
		subscription *nats.Subscription
		err          error
	)
	if queueGroup != "" {
		subscription, err = client.GetConn().QueueSubscribe(subject, queueGroup, cb)
	} else {
		subscription, err = client.GetConn().Subscribe(subject, cb)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject %s: %w", subject, err)
	}

	return &Consumer{
		subscription: subscription,
		subject:      subject,
	}, nil
}

// Subject returns the subject this consumer listens on
func (c *Consumer) Subject() string {
	return c.subject
}

// Close drains the subscription
func (c *Consumer) Close() error {
	if c.subscription == nil {
		return nil
	}
	if err := c.subscription.Unsubscribe(); err != nil {
		return fmt.Errorf("failed to unsubscribe from subject %s: %w", c.subject, err)
	}
	c.subscription = nil
	return nil
}
