// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

package services

import (
	"context"
	"time"

	"github.com/tomtom215/mockcam/internal/metrics"
)

// DefaultUptimeInterval is how often the uptime gauge is refreshed.
const DefaultUptimeInterval = 15 * time.Second

// UptimeService keeps the app_uptime_seconds gauge current between scrapes.
type UptimeService struct {
	start    time.Time
	interval time.Duration
	update   func(start time.Time)
	name     string
}

// NewUptimeService reports uptime measured from start. A non-positive
// interval uses DefaultUptimeInterval.
func NewUptimeService(start time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = DefaultUptimeInterval
	}
	return &UptimeService{
		start:    start,
		interval: interval,
		update:   metrics.UpdateUptime,
		name:     "uptime-reporter",
	}
}

// Serve implements suture.Service.
func (u *UptimeService) Serve(ctx context.Context) error {
	u.update(u.start)

	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			u.update(u.start)
		}
	}
}

// String names the service in supervisor events.
func (u *UptimeService) String() string {
	return u.name
}
