package nsq

import (
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/xpend/internal/pkg/logger"
)

// MessageHandler processes the payload of one message
type MessageHandler func(data []byte) error

// maxAttempts bounds redelivery of a message whose handler keeps failing
const maxAttempts = 5

// Consumer handles consuming messages from one NSQ topic/channel
type Consumer struct {
	consumer *nsq.Consumer
}

// NewConsumer creates a consumer for topic on channel. Call Connect to start it.
func NewConsumer(topic, channel string, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()
	config.MaxAttempts = maxAttempts

	consumer, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLogger(nil, nsq.LogLevelError)
	consumer.AddHandler(newHandler(topic, handler))

	return &Consumer{consumer: consumer}, nil
}

// newHandler adapts handler; a returned error makes nsq requeue the message
func newHandler(topic string, handler MessageHandler) nsq.Handler {
	return nsq.HandlerFunc(func(message *nsq.Message) error {
		if len(message.Body) == 0 {
			return nil
		}
		if err := handler(message.Body); err != nil {
			logger.Error("Error processing message",
				logger.String("topic", topic),
				logger.Int("attempts", int(message.Attempts)),
				logger.ErrorField(err))
			return err
		}
		return nil
	})
}

// Connect attaches the consumer to lookupd when configured, nsqd otherwise
func (c *Consumer) Connect(nsqdAddress, lookupdAddress string) error {
	if lookupdAddress != "" {
		if err := c.consumer.ConnectToNSQLookupd(lookupdAddress); err != nil {
			return fmt.Errorf("failed to connect to NSQ lookupd at %s: %w", lookupdAddress, err)
		}
		return nil
	}
	if err := c.consumer.ConnectToNSQD(nsqdAddress); err != nil {
		return fmt.Errorf("failed to connect to NSQ daemon at %s: %w", nsqdAddress, err)
	}
	return nil
}

// Stop gracefully stops the consumer and waits for in-flight messages
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
