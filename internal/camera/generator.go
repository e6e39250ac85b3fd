// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

package camera

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"math/rand/v2"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/time/rate"

	"github.com/tomtom215/mockcam/internal/logging"
	"github.com/tomtom215/mockcam/internal/metrics"
)

// Frame geometry
const (
	Width  = 640
	Height = 480

	DefaultQuality = 75
)

// Resolution is the frame size as reported by /status.
var Resolution = formatUint(Width) + "x" + formatUint(Height)

func formatUint(n uint64) string {
	return strconv.FormatUint(n, 10)
}

// CameraInfo identifies the simulated camera.
type CameraInfo struct {
	ID       string
	Name     string
	Location string
	Type     string
}

// DefaultCameraInfo returns the identity used when nothing is configured.
func DefaultCameraInfo() CameraInfo {
	return CameraInfo{
		ID:       "MOCK-CAM-01",
		Name:     "MOCK CCTV - CAMERA 01",
		Location: "Test Location",
		Type:     "Mock CCTV Camera",
	}
}

type encodeFunc func(w io.Writer, img image.Image, quality int) error

func encodeJPEG(w io.Writer, img image.Image, quality int) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
}

// Generator produces JPEG frames and owns the frame counter.
type Generator struct {
	info    CameraInfo
	quality int
	face    font.Face
	now     func() time.Time
	encode  encodeFunc

	// rng is not safe for concurrent use
	rngMu sync.Mutex
	rng   *rand.Rand

	count atomic.Uint64

	// frameLog throttles the per-frame debug line
	frameLog rate.Sometimes
}

// Option configures a Generator.
type Option func(*Generator)

// WithCameraInfo sets the camera identity. Empty fields keep their defaults.
func WithCameraInfo(info CameraInfo) Option {
	return func(g *Generator) {
		if info.ID != "" {
			g.info.ID = info.ID
		}
		if info.Name != "" {
			g.info.Name = info.Name
		}
		if info.Location != "" {
			g.info.Location = info.Location
		}
		if info.Type != "" {
			g.info.Type = info.Type
		}
	}
}

// WithQuality sets the JPEG quality, clamped to 1..100.
func WithQuality(quality int) Option {
	return func(g *Generator) {
		g.quality = min(max(quality, 1), 100)
	}
}

// WithRandSource sets the source used for rectangle placement and color.
func WithRandSource(src rand.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.rng = rand.New(src)
		}
	}
}

// WithSeed makes rectangle placement reproducible. A zero seed keeps the
// random default.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		if seed != 0 {
			g.rng = rand.New(rand.NewPCG(seed, seed))
		}
	}
}

// WithClock overrides the clock used for the timestamp overlay.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithFontFace sets the overlay font. A nil face disables text rendering;
// the REC dot is still drawn.
func WithFontFace(face font.Face) Option {
	return func(g *Generator) {
		g.face = face
	}
}

// New returns a Generator with the default identity, quality 75, the
// built-in 7x13 bitmap font and a randomly seeded source.
func New(opts ...Option) *Generator {
	g := &Generator{
		info:     DefaultCameraInfo(),
		quality:  DefaultQuality,
		face:     basicfont.Face7x13,
		now:      time.Now,
		encode:   encodeJPEG,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		frameLog: rate.Sometimes{First: 1, Interval: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Info returns the camera identity.
func (g *Generator) Info() CameraInfo {
	return g.info
}

// FrameCount returns the number of frames generated so far.
func (g *Generator) FrameCount() uint64 {
	return g.count.Load()
}

// GenerateFrame draws a new frame, increments the counter and returns the
// JPEG bytes. The counter is incremented even when encoding fails.
func (g *Generator) GenerateFrame() ([]byte, error) {
	start := time.Now()

	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	drawBackground(img)
	drawGrid(img)

	for _, r := range g.motionRects() {
		drawMotionRect(img, r)
	}

	n := g.count.Add(1)

	if g.face != nil {
		g.drawOverlayText(img, n)
	}
	drawRecIndicator(img, g.face)

	var buf bytes.Buffer
	buf.Grow(64 * 1024)
	if err := g.encode(&buf, img, g.quality); err != nil {
		metrics.RecordFrameError(n)
		return nil, fmt.Errorf("%w %d: %w", ErrFrameEncode, n, err)
	}

	elapsed := time.Since(start)
	metrics.RecordFrame(elapsed, buf.Len(), n)

	g.frameLog.Do(func() {
		logging.Debug().
			Str("camera_id", g.info.ID).
			Uint64("frame", n).
			Int("bytes", buf.Len()).
			Dur("elapsed", elapsed).
			Msg("Frame generated")
	})

	return buf.Bytes(), nil
}
