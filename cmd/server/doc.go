// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

/*
Package main is the entry point for the mockcam server.

mockcam stands in for a network CCTV camera during integration testing. Every
request to /snapshot renders a fresh synthetic 640x480 JPEG, and /status
reports the camera identity and how many frames have been generated.

# Application Architecture

	RootSupervisor ("mockcam")
	├── TelemetrySupervisor ("telemetry-layer")
	│   └── Uptime reporter
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and an optional file
 2. Logging: zerolog with JSON/console output modes
 3. Camera: frame generator seeded from CAMERA_SEED
 4. HTTP: chi router with CORS, optional rate limiting and Prometheus metrics
 5. Supervisor Tree: suture v4 process supervision

# Endpoints

	GET /             HTML page with a live snapshot
	GET /snapshot     image/jpeg frame
	GET /status       JSON camera status
	GET /health/live  liveness probe
	GET /metrics      Prometheus metrics (METRICS_ENABLED)
	GET /swagger/     Swagger UI (SWAGGER_ENABLED)

# Configuration

With no configuration the server listens on 0.0.0.0:5000. Common overrides:

	HTTP_PORT=5000
	CAMERA_ID=MOCK-CAM-01
	CAMERA_SEED=42               # reproducible rectangle placement
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server stops
accepting connections and drains in-flight requests for SHUTDOWN_TIMEOUT.

# Example Usage

	./mockcam
	curl -o frame.jpg http://localhost:5000/snapshot
	curl http://localhost:5000/status
*/
package main
