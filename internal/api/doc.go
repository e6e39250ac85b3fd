// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

/*
Package api provides the HTTP layer of the mock camera.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: camera and health endpoints backed by a FrameSource
  - Response formatting: JSON envelope for health checks and errors
  - ChiMiddleware: go-chi/cors and the optional go-chi/httprate limiter

Routes:

	GET /             HTML page with an auto-refreshing snapshot
	GET /snapshot     freshly generated image/jpeg frame
	GET /status       bare JSON status object
	GET /health/live  liveness probe (APIResponse envelope)
	GET /metrics      Prometheus exposition (optional)
	GET /swagger/*    Swagger UI (optional)

Middleware Stack (in order):

 1. RequestID: echoes or generates X-Request-ID
 2. RealIP: honors X-Forwarded-For from a reverse proxy
 3. AccessLog: one zerolog line per request
 4. Recoverer: turns handler panics into 500s
 5. CORS: go-chi/cors, any origin by default
 6. RateLimit + PrometheusMetrics on the camera routes
 7. Compression on the HTML and JSON camera routes

The /status body is a flat object whose field order and names are relied on
by existing consumers, so it is not wrapped in APIResponse. Snapshots are
never compressed since JPEG data does not shrink.

Example Usage:

	cam := camera.New(camera.WithSeed(42))
	handler := api.NewHandler(cam, api.HandlerConfig{PublicURL: "http://localhost:5000"})
	router := api.NewRouter(handler, nil, api.RouterOptions{MetricsEnabled: true})
	http.ListenAndServe(":5000", router.SetupChi())

All handlers are safe for concurrent use; frame counting is atomic inside the
camera.
*/
package api
