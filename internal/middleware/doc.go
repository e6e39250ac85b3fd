// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

/*
Package middleware provides the HTTP middleware used by the camera router.

Key Components:

  - RequestID: X-Request-ID propagation and logging context
  - AccessLog: one zerolog line per request, warn on slow requests
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern
  - Compression: gzip for text and JSON bodies, JPEG frames pass through

All four use the http.HandlerFunc -> http.HandlerFunc shape; the api
package adapts them to chi's func(http.Handler) http.Handler.
*/
package middleware
