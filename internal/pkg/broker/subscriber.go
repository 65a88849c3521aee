package broker

import (
	"fmt"

	"github.com/piresc/xpend/internal/pkg/constants"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/internal/pkg/nats"
	"github.com/piresc/xpend/internal/pkg/nsq"
)

// NATSSubscriber subscribes through a queue group so replicas share the load
type NATSSubscriber struct {
	client *nats.Client
	queue  string
}

// NewNATSSubscriber wraps an open client
func NewNATSSubscriber(client *nats.Client, queue string) *NATSSubscriber {
	return &NATSSubscriber{client: client, queue: queue}
}

func (s *NATSSubscriber) Subscribe(subject string, handler Handler) error {
	return s.client.QueueSubscribe(subject, s.queue, nats.MessageHandler(handler))
}

func (s *NATSSubscriber) Close() {
	s.client.Close()
}

// NSQSubscriber starts one consumer per topic on a shared channel
type NSQSubscriber struct {
	nsqdAddress    string
	lookupdAddress string
	channel        string
	consumers      []*nsq.Consumer
}

// NewNSQSubscriber prepares consumers for the configured daemon
func NewNSQSubscriber(cfg models.NSQConfig) *NSQSubscriber {
	return &NSQSubscriber{
		nsqdAddress:    cfg.NSQDAddress,
		lookupdAddress: cfg.LookupdAddress,
		channel:        cfg.ConsumerChannel,
	}
}

func (s *NSQSubscriber) Subscribe(subject string, handler Handler) error {
	consumer, err := nsq.NewConsumer(subject, s.channel, nsq.MessageHandler(handler))
	if err != nil {
		return err
	}
	if err := consumer.Connect(s.nsqdAddress, s.lookupdAddress); err != nil {
		consumer.Stop()
		return err
	}
	s.consumers = append(s.consumers, consumer)
	return nil
}

func (s *NSQSubscriber) Close() {
	for _, consumer := range s.consumers {
		consumer.Stop()
	}
}

// NewSubscriber connects the subscriber selected by cfg.Events.Broker
func NewSubscriber(cfg *models.Config) (Subscriber, error) {
	switch cfg.Events.Broker {
	case DriverNATS:
		client, err := nats.NewClient(cfg.NATS.URL, cfg.App.Name)
		if err != nil {
			return nil, err
		}
		return NewNATSSubscriber(client, constants.QueueGroupNotifier), nil
	case DriverNSQ:
		return NewNSQSubscriber(cfg.NSQ), nil
	default:
		return nil, fmt.Errorf("event broker %q cannot deliver events", cfg.Events.Broker)
	}
}
