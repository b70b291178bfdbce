// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package supervisor runs Marquee's long-lived services under a suture tree.

	marquee
	├── index-layer      IndexService (startup build, periodic rebuilds)
	├── messaging-layer  RebuildListener, EventForwarder (when NATS is configured)
	└── api-layer        HTTPServerService

A crashing service is restarted by its layer with suture's backoff, without
touching the other layers. The one deliberate exception is a failed first
index build: with no index to serve, IndexService terminates the whole tree
and the process exits.

Supervisor events are logged through sutureslog on top of the zerolog-backed
slog handler from internal/logging.
*/
package supervisor
