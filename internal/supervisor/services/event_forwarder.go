// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"

	"github.com/thejerf/suture/v4"
)

// Forwarder is implemented by *events.Forwarder.
type Forwarder interface {
	Run(ctx context.Context) error
	Subject() string
}

// EventForwarderService supervises a Forwarder. A failed subscription is
// retried with suture's backoff; a closed bus ends the service.
type EventForwarderService struct {
	fwd Forwarder
}

// NewEventForwarderService wraps fwd.
func NewEventForwarderService(fwd Forwarder) *EventForwarderService {
	return &EventForwarderService{fwd: fwd}
}

// Serve implements suture.Service.
func (s *EventForwarderService) Serve(ctx context.Context) error {
	err := s.fwd.Run(ctx)
	if err == nil {
		return suture.ErrDoNotRestart
	}
	return err
}

func (s *EventForwarderService) String() string {
	return "event-forwarder:" + s.fwd.Subject()
}
