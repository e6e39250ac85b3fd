// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
//
// Loading order (Koanf v2):
//  1. Defaults
//  2. Optional YAML config file
//  3. Environment variables
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Camera   CameraConfig   `koanf:"camera"`
	Security SecurityConfig `koanf:"security"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST: bind address (default: 0.0.0.0)
//   - HTTP_PORT: listen port (default: 5000)
//   - HTTP_TIMEOUT: read/write timeout (default: 30s)
//   - SHUTDOWN_TIMEOUT: graceful shutdown budget (default: 10s)
//   - PUBLIC_URL: base URL shown on the index page (default: http://localhost:<HTTP_PORT>)
//   - SWAGGER_ENABLED: serve Swagger UI at /swagger/ (default: true)
type ServerConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	PublicURL       string        `koanf:"public_url"`
	SwaggerEnabled  bool          `koanf:"swagger_enabled"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LocalURL is the base URL used when PUBLIC_URL is unset. It follows the
// configured port.
func (s ServerConfig) LocalURL() string {
	return "http://" + net.JoinHostPort("localhost", strconv.Itoa(s.Port))
}

// CameraConfig describes the simulated camera.
//
// Environment Variables:
//   - CAMERA_ID: identifier reported by /status (default: MOCK-CAM-01)
//   - CAMERA_NAME: label drawn on each frame (default: MOCK CCTV - CAMERA 01)
//   - CAMERA_LOCATION: location reported by /status (default: Test Location)
//   - CAMERA_TYPE: type reported by /status (default: Mock CCTV Camera)
//   - JPEG_QUALITY: encoder quality 1-100 (default: 75)
//   - CAMERA_SEED: fixed seed for rectangle placement, 0 for random (default: 0)
type CameraConfig struct {
	ID          string `koanf:"id" validate:"required"`
	Name        string `koanf:"name"`
	Location    string `koanf:"location"`
	Type        string `koanf:"type"`
	JPEGQuality int    `koanf:"jpeg_quality" validate:"min=1,max=100"`
	Seed        uint64 `koanf:"seed"`
}

// SecurityConfig holds CORS and rate limiting settings.
//
// Environment Variables:
//   - CORS_ORIGINS: comma-separated allowed origins (default: *)
//   - RATE_LIMIT_REQUESTS: requests per window per IP (default: 600)
//   - RATE_LIMIT_WINDOW: rate limit window (default: 1m)
//   - DISABLE_RATE_LIMIT: turn the limiter off (default: true)
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// MetricsConfig controls the Prometheus endpoint.
//
// Environment Variables:
//   - METRICS_ENABLED: expose /metrics (default: true)
type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: include file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, the optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
