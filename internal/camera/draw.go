// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

package camera

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Palette
var (
	backgroundColor = color.RGBA{R: 169, G: 169, B: 169, A: 255} // dark gray
	gridColor       = color.RGBA{R: 211, G: 211, B: 211, A: 255} // light gray
	outlineColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	textColor       = color.RGBA{R: 0, G: 255, B: 0, A: 255} // lime
	recColor        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Layout
const (
	gridSpacing = 50

	motionRectCount = 3
	motionRectMin   = 30
	motionRectMax   = 100
	motionRectMaxX  = Width - motionRectMax  // 540
	motionRectMaxY  = Height - motionRectMax // 380
	motionColorMin  = 100

	textX          = 10
	textLineHeight = 20
	textFirstLine  = 10

	recCenterX = 600
	recCenterY = 20
	recRadius  = 10
	recLabelX  = 560
	recLabelY  = 12
)

// motionRect is one simulated moving object.
type motionRect struct {
	bounds image.Rectangle
	fill   color.RGBA
}

// motionRects draws the random layout for one frame under the rng lock.
func (g *Generator) motionRects() [motionRectCount]motionRect {
	g.rngMu.Lock()
	defer g.rngMu.Unlock()

	var rects [motionRectCount]motionRect
	for i := range rects {
		x := g.rng.IntN(motionRectMaxX + 1)
		y := g.rng.IntN(motionRectMaxY + 1)
		w := motionRectMin + g.rng.IntN(motionRectMax-motionRectMin+1)
		h := motionRectMin + g.rng.IntN(motionRectMax-motionRectMin+1)
		rects[i] = motionRect{
			bounds: image.Rect(x, y, x+w, y+h),
			fill: color.RGBA{
				R: uint8(motionColorMin + g.rng.IntN(256-motionColorMin)),
				G: uint8(motionColorMin + g.rng.IntN(256-motionColorMin)),
				B: uint8(motionColorMin + g.rng.IntN(256-motionColorMin)),
				A: 255,
			},
		}
	}
	return rects
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func drawBackground(img *image.RGBA) {
	fill(img, img.Bounds(), backgroundColor)
}

func drawGrid(img *image.RGBA) {
	for x := 0; x < Width; x += gridSpacing {
		fill(img, image.Rect(x, 0, x+1, Height), gridColor)
	}
	for y := 0; y < Height; y += gridSpacing {
		fill(img, image.Rect(0, y, Width, y+1), gridColor)
	}
}

// drawMotionRect fills r and traces a 1px white border along its inner edge.
func drawMotionRect(img *image.RGBA, r motionRect) {
	b := r.bounds
	fill(img, b, r.fill)
	fill(img, image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+1), outlineColor)
	fill(img, image.Rect(b.Min.X, b.Max.Y-1, b.Max.X, b.Max.Y), outlineColor)
	fill(img, image.Rect(b.Min.X, b.Min.Y, b.Min.X+1, b.Max.Y), outlineColor)
	fill(img, image.Rect(b.Max.X-1, b.Min.Y, b.Max.X, b.Max.Y), outlineColor)
}

// drawText places s with its top edge at (x, top). font.Drawer positions
// by baseline, so the face ascent is added.
func drawText(img *image.RGBA, face font.Face, c color.Color, x, top int, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, top+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

func (g *Generator) drawOverlayText(img *image.RGBA, frame uint64) {
	lines := []string{
		g.info.Name,
		g.now().Format("2006-01-02 15:04:05"),
		"Frame: " + formatUint(frame),
	}
	for i, line := range lines {
		drawText(img, g.face, textColor, textX, textFirstLine+i*textLineHeight, line)
	}
}

// drawRecIndicator draws the red dot and, when a face is available, the
// white REC label.
func drawRecIndicator(img *image.RGBA, face font.Face) {
	r2 := recRadius * recRadius
	for y := recCenterY - recRadius; y <= recCenterY+recRadius; y++ {
		for x := recCenterX - recRadius; x <= recCenterX+recRadius; x++ {
			dx, dy := x-recCenterX, y-recCenterY
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(x, y, recColor)
			}
		}
	}
	if face != nil {
		drawText(img, face, outlineColor, recLabelX, recLabelY, "REC")
	}
}
