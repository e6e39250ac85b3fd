// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

package api

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/mockcam/internal/camera"
)

func TestSetupChi_ObservabilityToggles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		opts        RouterOptions
		path        string
		wantStatus  int
		wantContent string
	}{
		{"metrics enabled", RouterOptions{MetricsEnabled: true}, "/metrics", http.StatusOK, "api_requests_total"},
		{"metrics disabled", RouterOptions{}, "/metrics", http.StatusNotFound, ""},
		{"swagger disabled", RouterOptions{}, "/swagger/index.html", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHandler(camera.New(), HandlerConfig{})
			srv := NewRouter(h, nil, tt.opts).SetupChi()

			// Touch a route so the request counter has a sample
			srv.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("GET %s = %d, want %d", tt.path, rec.Code, tt.wantStatus)
			}
			if tt.wantContent != "" && !strings.Contains(rec.Body.String(), tt.wantContent) {
				t.Errorf("GET %s body missing %q", tt.path, tt.wantContent)
			}
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	srv := NewRouter(NewHandler(camera.New(), HandlerConfig{}), nil, RouterOptions{}).SetupChi()

	req := httptest.NewRequest(http.MethodOptions, "/status", nil)
	req.Header.Set("Origin", "https://flow.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	mw := NewChiMiddleware(&ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"*"},
		RateLimitRequests:  2,
		RateLimitWindow:    time.Minute,
	})
	srv := NewRouter(NewHandler(camera.New(), HandlerConfig{}), mw, RouterOptions{}).SetupChi()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/status", nil)
		req.RemoteAddr = "192.0.2.10:4000"
		srv.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("first two requests = %v, want 200s", codes[:2])
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", codes[2])
	}
}

func TestRateLimit_DisabledIsNoop(t *testing.T) {
	t.Parallel()

	mw := NewChiMiddleware(nil)
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	mw.RateLimit()(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !called {
		t.Error("disabled rate limiter should call next")
	}
}

func TestSetupChi_SnapshotSkipsCompression(t *testing.T) {
	t.Parallel()

	srv := NewRouter(NewHandler(camera.New(), HandlerConfig{}), nil, RouterOptions{}).SetupChi()

	tests := []struct {
		path         string
		wantEncoding string
	}{
		{"/snapshot", ""},
		{"/status", "gzip"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("GET %s = %d, want 200", tt.path, rec.Code)
			}
			if got := rec.Header().Get("Content-Encoding"); got != tt.wantEncoding {
				t.Errorf("GET %s Content-Encoding = %q, want %q", tt.path, got, tt.wantEncoding)
			}
			if tt.wantEncoding != "" {
				return
			}
			want := strconv.Itoa(rec.Body.Len())
			if got := rec.Header().Get("Content-Length"); got != want {
				t.Errorf("GET %s Content-Length = %q, want %s", tt.path, got, want)
			}
		})
	}
}
