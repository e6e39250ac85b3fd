// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/mockcam/internal/metrics"
)

func TestNewUptimeService(t *testing.T) {
	start := time.Now()

	svc := NewUptimeService(start, 0)
	if svc.interval != DefaultUptimeInterval {
		t.Errorf("expected default interval %v, got %v", DefaultUptimeInterval, svc.interval)
	}
	if !svc.start.Equal(start) {
		t.Errorf("expected start %v, got %v", start, svc.start)
	}
	if svc.String() != "uptime-reporter" {
		t.Errorf("expected 'uptime-reporter', got %q", svc.String())
	}

	svc = NewUptimeService(start, time.Second)
	if svc.interval != time.Second {
		t.Errorf("expected interval 1s, got %v", svc.interval)
	}
}

func TestUptimeService_TicksUntilCanceled(t *testing.T) {
	var calls atomic.Int32
	svc := NewUptimeService(time.Now(), 5*time.Millisecond)
	svc.update = func(time.Time) { calls.Add(1) }

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for calls.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if got := calls.Load(); got < 3 {
		t.Errorf("expected at least 3 updates, got %d", got)
	}

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestUptimeService_SetsGauge(t *testing.T) {
	svc := NewUptimeService(time.Now().Add(-time.Minute), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The first update happens before the loop checks ctx.
	if err := svc.Serve(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	if got := testutil.ToFloat64(metrics.AppUptime); got < 60 {
		t.Errorf("expected uptime >= 60s, got %v", got)
	}
}
