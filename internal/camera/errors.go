// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

package camera

import "errors"

// ErrFrameEncode wraps failures from the JPEG encoder.
var ErrFrameEncode = errors.New("failed to encode frame")
