// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

/*
Package services adapts long-running mockcam components to suture.Service.

Each wrapper turns a component's own lifecycle into suture's context-aware
Serve method and names itself through fmt.Stringer so supervisor events are
readable:

  - HTTPServerService: runs an *http.Server and shuts it down gracefully when
    the supervisor cancels the context
  - UptimeService: refreshes the app_uptime_seconds gauge on a ticker

Serve returns ctx.Err() on cancellation and a wrapped error on failure, which
the supervisor treats as a crash and restarts with backoff.
*/
package services
