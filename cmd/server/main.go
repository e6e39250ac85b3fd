// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/tomtom215/mockcam/docs"
	"github.com/tomtom215/mockcam/internal/api"
	"github.com/tomtom215/mockcam/internal/camera"
	"github.com/tomtom215/mockcam/internal/config"
	"github.com/tomtom215/mockcam/internal/logging"
	"github.com/tomtom215/mockcam/internal/metrics"
	"github.com/tomtom215/mockcam/internal/supervisor"
	"github.com/tomtom215/mockcam/internal/supervisor/services"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		// Restore default handling so a second signal terminates immediately.
		stop()
	}()

	if err := run(ctx, cfg); err != nil {
		stop()
		logging.Fatal().Err(err).Msg("Camera server failed")
	}
	stop()
}

// run serves the camera until ctx is canceled and the supervisor tree has
// stopped.
func run(ctx context.Context, cfg *config.Config) error {
	start := time.Now()
	metrics.SetAppInfo(Version, runtime.Version())

	cam := newCamera(cfg)
	server := newHTTPServer(cfg, cam)

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddTelemetryService(services.NewUptimeService(start, services.DefaultUptimeInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	logStartup(cfg)

	// ServeBackground sends exactly one value and never closes the channel.
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().
		Uint64("frames_generated", cam.FrameCount()).
		Msg("Camera server stopped")
	return nil
}

// newCamera builds the frame generator from the camera settings.
func newCamera(cfg *config.Config) *camera.Generator {
	return camera.New(
		camera.WithCameraInfo(camera.CameraInfo{
			ID:       cfg.Camera.ID,
			Name:     cfg.Camera.Name,
			Location: cfg.Camera.Location,
			Type:     cfg.Camera.Type,
		}),
		camera.WithQuality(cfg.Camera.JPEGQuality),
		camera.WithSeed(cfg.Camera.Seed),
	)
}

// newHTTPServer wires the camera into the chi router.
func newHTTPServer(cfg *config.Config, cam api.FrameSource) *http.Server {
	handler := api.NewHandler(cam, api.HandlerConfig{
		PublicURL: cfg.Server.PublicURL,
	})

	mwConfig := api.DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwConfig.RateLimitRequests = cfg.Security.RateLimitReqs
	mwConfig.RateLimitWindow = cfg.Security.RateLimitWindow
	mwConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled

	if u, err := url.Parse(cfg.Server.PublicURL); err == nil && u.Host != "" {
		docs.SwaggerInfo.Host = u.Host
		docs.SwaggerInfo.Schemes = []string{u.Scheme}
	}

	router := api.NewRouter(handler, api.NewChiMiddleware(mwConfig), api.RouterOptions{
		MetricsEnabled: cfg.Metrics.Enabled,
		SwaggerEnabled: cfg.Server.SwaggerEnabled,
	})

	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
}

// logStartup lists the reachable endpoints under the public URL.
func logStartup(cfg *config.Config) {
	base := strings.TrimSuffix(cfg.Server.PublicURL, "/")

	logging.Info().
		Str("version", Version).
		Str("camera_id", cfg.Camera.ID).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting mock CCTV camera server")

	for _, ep := range startupEndpoints(cfg) {
		logging.Info().Str("url", base+ep.path).Msg(ep.label)
	}

	if !cfg.Security.RateLimitDisabled {
		logging.Info().
			Int("requests", cfg.Security.RateLimitReqs).
			Dur("window", cfg.Security.RateLimitWindow).
			Msg("Rate limiting enabled")
	}
	if cfg.HasWildcardCORS() {
		logging.Debug().Msg("CORS allows any origin")
	}
}

type endpoint struct {
	label string
	path  string
}

func startupEndpoints(cfg *config.Config) []endpoint {
	eps := []endpoint{
		{"Web interface", "/"},
		{"Snapshot", "/snapshot"},
		{"Status", "/status"},
	}
	if cfg.Metrics.Enabled {
		eps = append(eps, endpoint{"Metrics", "/metrics"})
	}
	if cfg.Server.SwaggerEnabled {
		eps = append(eps, endpoint{"API docs", "/swagger/index.html"})
	}
	return eps
}
