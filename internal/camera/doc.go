// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

/*
Package camera renders synthetic CCTV frames.

A Generator draws a 640x480 frame on every call to GenerateFrame:

  - dark gray background with a light gray 50px grid
  - three randomly placed and colored "motion" rectangles with white outlines
  - lime text in the top-left corner: camera name, wall-clock time, frame number
  - a red REC dot with a white "REC" label in the top-right corner

and returns it JPEG-encoded. Each call increments the frame counter exactly
once; FrameCount reads it without side effects. Both are safe for concurrent
use.

# Usage

	gen := camera.New(
	    camera.WithCameraInfo(camera.CameraInfo{ID: "MOCK-CAM-01", Name: "MOCK CCTV - CAMERA 01"}),
	    camera.WithQuality(75),
	)
	jpegBytes, err := gen.GenerateFrame()

Tests that need reproducible layouts use WithSeed and WithClock.
*/
package camera
