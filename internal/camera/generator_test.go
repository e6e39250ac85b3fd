// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

package camera

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"io"
	"math/rand/v2"
	"sync"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()

	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("frame is not a valid JPEG: %v", err)
	}
	return img
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	g := New()

	if g.FrameCount() != 0 {
		t.Errorf("FrameCount() = %d, want 0", g.FrameCount())
	}
	if g.Info() != DefaultCameraInfo() {
		t.Errorf("Info() = %+v, want defaults", g.Info())
	}
	if g.quality != DefaultQuality {
		t.Errorf("quality = %d, want %d", g.quality, DefaultQuality)
	}
	if g.face == nil {
		t.Error("expected a default font face")
	}
	if Resolution != "640x480" {
		t.Errorf("Resolution = %q, want 640x480", Resolution)
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	g := New(
		WithCameraInfo(CameraInfo{ID: "DOCK-CAM-07", Location: "Loading Dock"}),
		WithQuality(500),
		WithFontFace(nil),
		WithClock(nil),
		WithRandSource(nil),
	)

	info := g.Info()
	if info.ID != "DOCK-CAM-07" || info.Location != "Loading Dock" {
		t.Errorf("Info() = %+v, want overridden ID and location", info)
	}
	if info.Name != "MOCK CCTV - CAMERA 01" || info.Type != "Mock CCTV Camera" {
		t.Errorf("Info() = %+v, empty fields should keep defaults", info)
	}
	if g.quality != 100 {
		t.Errorf("quality = %d, want clamped 100", g.quality)
	}
	if g.face != nil {
		t.Error("WithFontFace(nil) should disable text")
	}
	if g.now == nil || g.rng == nil {
		t.Error("nil clock or source should keep the defaults")
	}

	if got := New(WithQuality(-3)).quality; got != 1 {
		t.Errorf("quality = %d, want clamped 1", got)
	}
}

func TestGenerateFrame_Dimensions(t *testing.T) {
	t.Parallel()

	data, err := New().GenerateFrame()
	if err != nil {
		t.Fatalf("GenerateFrame() error = %v", err)
	}
	if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		t.Fatal("frame does not start with a JPEG SOI marker")
	}

	b := decode(t, data).Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		t.Errorf("frame is %dx%d, want %dx%d", b.Dx(), b.Dy(), Width, Height)
	}
}

func TestGenerateFrame_CountsFrames(t *testing.T) {
	t.Parallel()

	g := New()
	for i := 1; i <= 5; i++ {
		if _, err := g.GenerateFrame(); err != nil {
			t.Fatalf("GenerateFrame() error = %v", err)
		}
		if got := g.FrameCount(); got != uint64(i) {
			t.Errorf("after %d frames FrameCount() = %d", i, got)
		}
	}

	// Reading the counter has no side effects
	if g.FrameCount() != 5 || g.FrameCount() != 5 {
		t.Error("FrameCount() should not change the counter")
	}
}

func TestGenerateFrame_Concurrent(t *testing.T) {
	t.Parallel()

	const workers = 50

	g := New()
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.GenerateFrame(); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("GenerateFrame() error = %v", err)
	}
	if got := g.FrameCount(); got != workers {
		t.Errorf("FrameCount() = %d, want %d", got, workers)
	}
}

func TestGenerateFrame_ConsecutiveFramesDiffer(t *testing.T) {
	t.Parallel()

	g := New(WithClock(fixedClock))

	first, err := g.GenerateFrame()
	if err != nil {
		t.Fatalf("GenerateFrame() error = %v", err)
	}
	second, err := g.GenerateFrame()
	if err != nil {
		t.Fatalf("GenerateFrame() error = %v", err)
	}
	if bytes.Equal(first, second) {
		t.Error("consecutive frames should differ")
	}
}

func TestGenerateFrame_SeedIsDeterministic(t *testing.T) {
	t.Parallel()

	a := New(WithSeed(42), WithClock(fixedClock))
	b := New(WithSeed(42), WithClock(fixedClock))

	for i := 0; i < 3; i++ {
		fa, err := a.GenerateFrame()
		if err != nil {
			t.Fatalf("GenerateFrame() error = %v", err)
		}
		fb, err := b.GenerateFrame()
		if err != nil {
			t.Fatalf("GenerateFrame() error = %v", err)
		}
		if !bytes.Equal(fa, fb) {
			t.Fatalf("frame %d differs between generators with the same seed", i+1)
		}
	}

	c := New(WithRandSource(rand.NewPCG(7, 7)), WithClock(fixedClock))
	fc, _ := c.GenerateFrame()
	fa, _ := New(WithSeed(42), WithClock(fixedClock)).GenerateFrame()
	if bytes.Equal(fa, fc) {
		t.Error("different seeds should produce different frames")
	}
}

func TestGenerateFrame_WithoutFont(t *testing.T) {
	t.Parallel()

	g := New(WithFontFace(nil))

	data, err := g.GenerateFrame()
	if err != nil {
		t.Fatalf("GenerateFrame() error = %v", err)
	}
	decode(t, data)

	if g.FrameCount() != 1 {
		t.Errorf("FrameCount() = %d, want 1", g.FrameCount())
	}
}

func TestGenerateFrame_EncodeError(t *testing.T) {
	t.Parallel()

	encodeErr := errors.New("disk on fire")
	g := New()
	g.encode = func(io.Writer, image.Image, int) error { return encodeErr }

	data, err := g.GenerateFrame()
	if err == nil {
		t.Fatal("expected an error")
	}
	if data != nil {
		t.Error("expected nil data on error")
	}
	if !errors.Is(err, ErrFrameEncode) {
		t.Errorf("error %v should wrap ErrFrameEncode", err)
	}
	if !errors.Is(err, encodeErr) {
		t.Errorf("error %v should wrap the encoder error", err)
	}
	if g.FrameCount() != 1 {
		t.Errorf("FrameCount() = %d, want 1", g.FrameCount())
	}
}

func TestGenerateFrame_PassesQuality(t *testing.T) {
	t.Parallel()

	var gotQuality int
	g := New(WithQuality(40))
	g.encode = func(w io.Writer, img image.Image, quality int) error {
		gotQuality = quality
		return encodeJPEG(w, img, quality)
	}

	if _, err := g.GenerateFrame(); err != nil {
		t.Fatalf("GenerateFrame() error = %v", err)
	}
	if gotQuality != 40 {
		t.Errorf("encoder quality = %d, want 40", gotQuality)
	}
}

func BenchmarkGenerateFrame(b *testing.B) {
	g := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := g.GenerateFrame(); err != nil {
			b.Fatal(err)
		}
	}
}
