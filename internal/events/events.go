// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package events

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/retrieval"
)

// Topics.
const (
	TopicRebuildRequested = "index.rebuild.requested"
	TopicIndexRebuilt     = "index.rebuilt"
)

const (
	metadataCorrelationID = "correlation_id"
	metadataEventType     = "event_type"
)

// RebuildRequested asks the rebuild listener to rebuild the indexes.
type RebuildRequested struct {
	Mode        string    `json:"mode"`
	Reclassify  bool      `json:"reclassify"`
	RequestedAt time.Time `json:"requested_at"`
}

// IndexRebuilt reports a finished rebuild.
type IndexRebuilt struct {
	Mode        string    `json:"mode"`
	PrimarySize int       `json:"primary_size"`
	LSASize     int       `json:"lsa_size"`
	LSARank     int       `json:"lsa_rank"`
	Classified  int       `json:"classified"`
	Reused      int       `json:"reused"`
	DurationMS  int64     `json:"duration_ms"`
	BuiltAt     time.Time `json:"built_at"`
	LSAError    string    `json:"lsa_error,omitempty"`
}

// NewIndexRebuilt converts a build result into an event payload.
func NewIndexRebuilt(r retrieval.BuildResult) IndexRebuilt {
	return IndexRebuilt{
		Mode:        r.Mode,
		PrimarySize: r.PrimarySize,
		LSASize:     r.LSASize,
		LSARank:     r.LSARank,
		Classified:  r.Classified,
		Reused:      r.Reused,
		DurationMS:  r.Duration.Milliseconds(),
		BuiltAt:     r.BuiltAt,
		LSAError:    r.LSAError,
	}
}

// newMessage encodes payload as a message with a fresh id. The correlation
// id from ctx, if any, is copied into the metadata.
func newMessage(ctx context.Context, eventType string, payload any) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s event: %w", eventType, err)
	}
	msg := message.NewMessage(uuid.NewString(), data)
	msg.Metadata.Set(metadataEventType, eventType)
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		msg.Metadata.Set(metadataCorrelationID, id)
	}
	return msg, nil
}

// DecodeRebuildRequested decodes a rebuild request message.
func DecodeRebuildRequested(msg *message.Message) (RebuildRequested, error) {
	var ev RebuildRequested
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return ev, fmt.Errorf("decode rebuild request %s: %w", msg.UUID, err)
	}
	return ev, nil
}

// DecodeIndexRebuilt decodes an index rebuilt message.
func DecodeIndexRebuilt(msg *message.Message) (IndexRebuilt, error) {
	var ev IndexRebuilt
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return ev, fmt.Errorf("decode index rebuilt %s: %w", msg.UUID, err)
	}
	return ev, nil
}

// MessageContext returns ctx carrying the message's correlation id.
func MessageContext(ctx context.Context, msg *message.Message) context.Context {
	if id := msg.Metadata.Get(metadataCorrelationID); id != "" {
		return logging.ContextWithCorrelationID(ctx, id)
	}
	return ctx
}
