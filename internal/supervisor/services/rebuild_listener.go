// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/marquee/internal/events"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/retrieval"
)

// Subscriber is implemented by *events.Bus.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

// RebuildListener runs the rebuilds requested on the event bus, one at a
// time. Every message is acked: a request that fails, or that arrives while
// another rebuild runs, is logged and dropped.
type RebuildListener struct {
	bus     Subscriber
	builder IndexBuilder
	logger  zerolog.Logger
}

// NewRebuildListener creates the listener.
//
//nolint:gocritic // zerolog.Logger is passed by value
func NewRebuildListener(bus Subscriber, builder IndexBuilder, logger zerolog.Logger) *RebuildListener {
	return &RebuildListener{
		bus:     bus,
		builder: builder,
		logger:  logger.With().Str("service", "rebuild-listener").Logger(),
	}
}

// Serve implements suture.Service. It stops for good when the bus closes.
func (l *RebuildListener) Serve(ctx context.Context) error {
	messages, err := l.bus.Subscribe(ctx, events.TopicRebuildRequested)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", events.TopicRebuildRequested, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return suture.ErrDoNotRestart
			}
			l.handle(ctx, msg)
			msg.Ack()
		}
	}
}

func (l *RebuildListener) handle(ctx context.Context, msg *message.Message) {
	ctx = events.MessageContext(ctx, msg)
	log := logging.Ctx(ctx).With().Str("service", "rebuild-listener").Str("event_id", msg.UUID).Logger()

	ev, err := events.DecodeRebuildRequested(msg)
	if err != nil {
		log.Error().Err(err).Msg("Dropping malformed rebuild request")
		return
	}

	result, err := l.builder.Rebuild(ctx, retrieval.RebuildRequest{Mode: ev.Mode, Reclassify: ev.Reclassify})
	switch {
	case errors.Is(err, retrieval.ErrBuildInProgress):
		log.Info().Str("mode", ev.Mode).Msg("Rebuild already running, request dropped")
	case err != nil:
		log.Warn().Err(err).Str("mode", ev.Mode).Msg("Requested rebuild failed")
	default:
		log.Info().Str("mode", result.Mode).Dur("duration", result.Duration).Msg("Requested rebuild complete")
	}
}

func (l *RebuildListener) String() string {
	return "rebuild-listener"
}
