// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

package api

import (
	"time"

	"github.com/tomtom215/mockcam/internal/camera"
)

// FrameSource is the camera the handlers serve. *camera.Generator
// implements it.
type FrameSource interface {
	GenerateFrame() ([]byte, error)
	FrameCount() uint64
	Info() camera.CameraInfo
}

// HandlerConfig holds the settings the handlers render into responses.
type HandlerConfig struct {
	// PublicURL is the base URL printed on the index page.
	PublicURL string

	// RefreshInterval is how often the index page reloads the snapshot.
	RefreshInterval time.Duration
}

// Handler serves the camera endpoints.
type Handler struct {
	camera    FrameSource
	config    HandlerConfig
	startTime time.Time
	now       func() time.Time
}

// NewHandler creates a Handler around cam. A zero RefreshInterval
// defaults to 5s.
func NewHandler(cam FrameSource, cfg HandlerConfig) *Handler {
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = 5 * time.Second
	}
	if cfg.PublicURL == "" {
		cfg.PublicURL = "http://localhost:5000"
	}
	return &Handler{
		camera:    cam,
		config:    cfg,
		startTime: time.Now(),
		now:       time.Now,
	}
}
