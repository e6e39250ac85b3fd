// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

/*
Package metrics defines the Prometheus collectors exported at /metrics.

# Metric Categories

Frame generation:
  - mockcam_frames_generated_total: frames drawn and encoded
  - mockcam_frame_errors_total: frames that failed to encode
  - mockcam_frame_generation_duration_seconds: draw + encode latency
  - mockcam_frame_size_bytes: encoded JPEG size
  - mockcam_frame_count: current camera counter

HTTP API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Process:
  - app_info{version,go_version}
  - app_uptime_seconds

All collectors register with the default registry through promauto, so
promhttp.Handler() exposes them without further wiring.

# Usage

	start := time.Now()
	data, err := encode(img)
	if err != nil {
	    metrics.RecordFrameError(count)
	    return nil, err
	}
	metrics.RecordFrame(time.Since(start), len(data), count)
*/
package metrics
