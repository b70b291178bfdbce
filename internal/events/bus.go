// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package events

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/retrieval"
)

// Bus is the in-process event bus. Messages published before anyone
// subscribes to a topic are dropped.
type Bus struct {
	pubsub *gochannel.GoChannel
}

// NewBus creates a bus. A nil logger discards Watermill logs.
func NewBus(logger watermill.LoggerAdapter) *Bus {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, logger),
	}
}

// Publish sends messages on topic.
func (b *Bus) Publish(topic string, msgs ...*message.Message) error {
	return b.pubsub.Publish(topic, msgs...)
}

// Subscribe returns the messages published on topic until ctx ends or the
// bus is closed. Every message must be acked or nacked.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, topic)
}

// Close shuts the bus down and closes subscriber channels.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}

// RequestRebuild publishes an asynchronous rebuild request and returns the
// message id.
func (b *Bus) RequestRebuild(ctx context.Context, req retrieval.RebuildRequest) (id string, err error) {
	defer func() { metrics.RecordEventPublished(TopicRebuildRequested, err) }()

	msg, err := newMessage(ctx, TopicRebuildRequested, RebuildRequested{
		Mode:        req.Mode,
		Reclassify:  req.Reclassify,
		RequestedAt: time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}
	if err := b.Publish(TopicRebuildRequested, msg); err != nil {
		return "", fmt.Errorf("publish rebuild request: %w", err)
	}
	return msg.UUID, nil
}

// IndexRebuilt publishes a finished rebuild. It implements retrieval.Notifier;
// publish failures are logged.
func (b *Bus) IndexRebuilt(ctx context.Context, result retrieval.BuildResult) {
	msg, err := newMessage(ctx, TopicIndexRebuilt, NewIndexRebuilt(result))
	if err == nil {
		err = b.Publish(TopicIndexRebuilt, msg)
	}
	metrics.RecordEventPublished(TopicIndexRebuilt, err)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("topic", TopicIndexRebuilt).Msg("Failed to publish event")
	}
}
