// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

/*
Package config provides layered configuration for the mock camera server.

# Configuration Sources

Configuration is loaded with Koanf v2 in three layers, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: $CONFIG_PATH, ./config.yaml, /etc/mockcam/config.yaml
 3. Environment variables (HTTP_PORT, CAMERA_ID, LOG_LEVEL, ...)

With no file and no environment variables the server listens on 0.0.0.0:5000
and reports itself as MOCK-CAM-01 at "Test Location".

# Configuration Structure

  - ServerConfig: listen address, timeouts, public URL, Swagger UI toggle
  - CameraConfig: camera identity, JPEG quality, random seed
  - SecurityConfig: CORS origins and the optional rate limiter
  - MetricsConfig: Prometheus endpoint toggle
  - LoggingConfig: zerolog level, format and caller reporting

# Example

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	addr := cfg.Server.Addr()

Config is immutable after Load and safe for concurrent reads.
*/
package config
