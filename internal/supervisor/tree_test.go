// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package supervisor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type countingService struct {
	starts atomic.Int32
	fail   error
}

func (s *countingService) Serve(ctx context.Context) error {
	s.starts.Add(1)
	if s.fail != nil {
		return s.fail
	}
	<-ctx.Done()
	return ctx.Err()
}

func TestNewSupervisorTree_Defaults(t *testing.T) {
	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{})
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}
	if tree.Root() == nil {
		t.Fatal("Root() = nil")
	}
	if tree.config != DefaultTreeConfig() {
		t.Errorf("config = %+v, want %+v", tree.config, DefaultTreeConfig())
	}

	custom := TreeConfig{FailureThreshold: 2, FailureDecay: 1, FailureBackoff: time.Second, ShutdownTimeout: time.Second}
	tree, _ = NewSupervisorTree(quietLogger(), custom)
	if tree.config != custom {
		t.Errorf("config = %+v, want %+v", tree.config, custom)
	}
}

func TestSupervisorTree_RunsEveryLayer(t *testing.T) {
	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})
	svcs := []*countingService{{}, {}, {}}
	tree.AddIndexService(svcs[0])
	tree.AddMessagingService(svcs[1])
	tree.AddAPIService(svcs[2])

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for _, s := range svcs {
		for s.starts.Load() == 0 {
			if time.Now().After(deadline) {
				t.Fatal("service never started")
			}
			time.Sleep(5 * time.Millisecond)
		}
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("tree did not stop")
	}
}

func TestSupervisorTree_TerminateFromLayer(t *testing.T) {
	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})
	tree.AddIndexService(&countingService{fail: suture.ErrTerminateSupervisorTree})
	tree.AddAPIService(&countingService{})

	errCh := tree.ServeBackground(context.Background())
	select {
	case err := <-errCh:
		if !errors.Is(err, suture.ErrTerminateSupervisorTree) {
			t.Errorf("Serve() = %v, want ErrTerminateSupervisorTree", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("tree did not terminate")
	}
}
