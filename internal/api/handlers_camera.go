// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

package api

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mockcam/internal/camera"
	"github.com/tomtom215/mockcam/internal/logging"
)

// StatusTimeLayout is ISO-8601 with microseconds and the local offset.
const StatusTimeLayout = "2006-01-02T15:04:05.000000Z07:00"

//go:embed templates/index.html.tmpl
var indexTemplateSource string

var indexTemplate = template.Must(template.New("index").Parse(indexTemplateSource))

// indexData is rendered into the index template.
type indexData struct {
	Camera        camera.CameraInfo
	PublicURL     string
	RefreshMillis int64
}

// Status is the /status payload. Field order matches the wire format.
type Status struct {
	CameraID   string `json:"camera_id"`
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
	FrameCount uint64 `json:"frame_count"`
	Resolution string `json:"resolution"`
	Location   string `json:"location"`
	Type       string `json:"type"`
}

// Index serves the HTML landing page.
//
// @Summary Landing page
// @Description Human-readable page listing the endpoints with a live snapshot that refreshes every 5 seconds.
// @Tags Camera
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Camera:        h.camera.Info(),
		PublicURL:     strings.TrimRight(h.config.PublicURL, "/"),
		RefreshMillis: h.config.RefreshInterval.Milliseconds(),
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render index page")
		WriteInternalError(w, r, "Failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write index page")
	}
}

// Snapshot generates and returns a new JPEG frame.
//
// @Summary Camera snapshot
// @Description Generates a new 640x480 JPEG frame. Every call increments the frame counter.
// @Tags Camera
// @Produce jpeg
// @Success 200 {file} binary "JPEG image"
// @Failure 500 {object} APIResponse "Frame generation failed"
// @Router /snapshot [get]
func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	frame, err := h.camera.GenerateFrame()
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to generate snapshot")
		WriteInternalError(w, r, "Failed to generate snapshot")
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(frame)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(frame); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Client went away during snapshot")
	}
}

// Status reports the camera identity and frame counter.
//
// @Summary Camera status
// @Description Returns the camera identity, the current time and the number of frames generated so far.
// @Tags Camera
// @Produce json
// @Success 200 {object} Status
// @Router /status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	info := h.camera.Info()
	status := Status{
		CameraID:   info.ID,
		Status:     "online",
		Timestamp:  h.now().Format(StatusTimeLayout),
		FrameCount: h.camera.FrameCount(),
		Resolution: camera.Resolution,
		Location:   info.Location,
		Type:       info.Type,
	}

	data, err := json.Marshal(status)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal status")
		WriteInternalError(w, r, "Failed to encode status")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write status")
	}
}
