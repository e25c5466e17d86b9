package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"

	"github.com/lokamart/lokamart/internal/pkg/logger"
	"github.com/lokamart/lokamart/internal/pkg/models"
)

// MessageHandler is a function that processes NSQ messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
}

// NewConsumer creates a new NSQ consumer for a topic/channel and
// connects it. Lookupd discovery is preferred when configured;
// otherwise the consumer connects straight to the configured nsqd.
func NewConsumer(topic, channel string, cfg models.NSQConfig, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()

	consumer, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}

	consumer.AddHandler(nsq.HandlerFunc(func(message *nsq.Message) error {
		if err := handler(message.Body); err != nil {
			logger.Warn("Error processing NSQ message",
				logger.String("topic", topic),
				logger.Err(err))
			// Returning the error requeues the message
			return err
		}
		return nil
	}))

	c := &Consumer{consumer: consumer}
	if len(cfg.LookupdAddresses) > 0 {
		if err := c.ConnectToLookupd(cfg.LookupdAddresses); err != nil {
			return nil, err
		}
		return c, nil
	}

	if err := consumer.ConnectToNSQD(cfg.NSQDAddress); err != nil {
		return nil, fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}

	return c, nil
}

// ConnectToLookupd connects the consumer to NSQ lookupd instances
func (c *Consumer) ConnectToLookupd(addresses []string) error {
	for _, addr := range addresses {
		if err := c.consumer.ConnectToNSQLookupd(addr); err != nil {
			return fmt.Errorf("failed to connect to NSQ lookupd at %s: %w", addr, err)
		}
	}
	return nil
}

// Stop gracefully stops the consumer
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}

// UnmarshalMessage deserializes a JSON message into the provided struct
func UnmarshalMessage(messageBody []byte, v interface{}) error {
	if err := json.Unmarshal(messageBody, v); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}
