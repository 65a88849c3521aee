package broker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/internal/pkg/nats"
	"github.com/piresc/xpend/internal/pkg/nsq"
)

// Supported values of EVENT_BROKER
const (
	DriverNATS = "nats"
	DriverNSQ  = "nsq"
	DriverNone = "none"
)

// Handler processes one message payload
type Handler func(data []byte) error

// Publisher sends raw payloads to a subject
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Subscriber delivers every message of subject to handler
type Subscriber interface {
	Subscribe(subject string, handler Handler) error
	Close()
}

// PublishJSON marshals v and publishes it
func PublishJSON(p Publisher, subject string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", subject, err)
	}
	return p.Publish(subject, data)
}

// NoopPublisher drops every message; used when EVENT_BROKER=none
type NoopPublisher struct{}

func (NoopPublisher) Publish(string, []byte) error { return nil }

// Dialer opens the clients of one broker; NewPublisher uses the default one
type Dialer struct {
	DialNATS func(url, name string) (*nats.Client, error)
	DialNSQ  func(address string) (*nsq.Producer, error)
}

// DefaultDialer connects to real brokers
var DefaultDialer = Dialer{
	DialNATS: nats.NewClient,
	DialNSQ:  nsq.NewProducer,
}

// NewPublisher connects the publisher selected by cfg.Events.Broker. The
// returned close function releases the connection.
func NewPublisher(ctx context.Context, cfg *models.Config) (Publisher, func(), error) {
	return DefaultDialer.NewPublisher(ctx, cfg)
}

// NewPublisher is NewPublisher with injectable dial functions
func (d Dialer) NewPublisher(_ context.Context, cfg *models.Config) (Publisher, func(), error) {
	switch cfg.Events.Broker {
	case DriverNATS:
		client, err := d.DialNATS(cfg.NATS.URL, cfg.App.Name)
		if err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil
	case DriverNSQ:
		producer, err := d.DialNSQ(cfg.NSQ.NSQDAddress)
		if err != nil {
			return nil, nil, err
		}
		return producer, producer.Stop, nil
	case DriverNone, "":
		return NoopPublisher{}, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown event broker %q", cfg.Events.Broker)
	}
}
