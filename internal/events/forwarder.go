// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	natsgo "github.com/nats-io/nats.go"

	"github.com/tomtom215/marquee/internal/metrics"
)

// NATSConfig configures the NATS publisher.
type NATSConfig struct {
	URL           string
	MaxReconnects int
	ReconnectWait time.Duration
}

// NewNATSPublisher connects a core NATS publisher (no JetStream). The
// connection is retried in the background when the server is down at
// startup.
func NewNATSPublisher(cfg NATSConfig, logger watermill.LoggerAdapter) (message.Publisher, error) {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	if cfg.MaxReconnects == 0 {
		cfg.MaxReconnects = -1
	}
	if cfg.ReconnectWait <= 0 {
		cfg.ReconnectWait = 2 * time.Second
	}

	natsOpts := []natsgo.Option{
		natsgo.Name("marquee"),
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(cfg.MaxReconnects),
		natsgo.ReconnectWait(cfg.ReconnectWait),
		natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", err, nil)
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info("NATS reconnected", watermill.LogFields{"url": nc.ConnectedUrl()})
		}),
	}

	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL:         cfg.URL,
		NatsOptions: natsOpts,
		Marshaler:   &wmNats.NATSMarshaler{},
		JetStream:   wmNats.JetStreamConfig{Disabled: true},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create nats publisher: %w", err)
	}
	return pub, nil
}

// Forwarder copies messages from a bus topic to an external publisher under
// prefix.topic.
type Forwarder struct {
	bus    *Bus
	out    message.Publisher
	topic  string
	prefix string
	logger watermill.LoggerAdapter
}

// NewForwarder creates a forwarder for topic.
func NewForwarder(bus *Bus, out message.Publisher, topic, prefix string, logger watermill.LoggerAdapter) (*Forwarder, error) {
	if bus == nil {
		return nil, errors.New("bus required")
	}
	if out == nil {
		return nil, errors.New("publisher required")
	}
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	return &Forwarder{bus: bus, out: out, topic: topic, prefix: prefix, logger: logger}, nil
}

// Subject is the external subject messages are forwarded to.
func (f *Forwarder) Subject() string {
	if f.prefix == "" {
		return f.topic
	}
	return f.prefix + "." + f.topic
}

// Run forwards messages until ctx ends or the bus closes; a closed bus
// returns nil. A failed publish is logged and the message is still acked.
func (f *Forwarder) Run(ctx context.Context) error {
	messages, err := f.bus.Subscribe(ctx, f.topic)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", f.topic, err)
	}

	subject := f.Subject()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return ctx.Err()
			}
			out := message.NewMessage(msg.UUID, msg.Payload)
			out.Metadata = msg.Metadata
			err := f.out.Publish(subject, out)
			metrics.RecordEventPublished(subject, err)
			if err != nil {
				f.logger.Error("Failed to forward event", err, watermill.LogFields{"subject": subject, "uuid": msg.UUID})
			}
			msg.Ack()
		}
	}
}
