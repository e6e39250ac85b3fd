// mockcam - Mock CCTV Camera Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mockcam

// Package main provides the mock CCTV camera HTTP server
//
// @title Mock CCTV Camera API
// @version 1.0
// @description Simulated CCTV camera serving synthetic JPEG snapshots and a JSON status document.
// @description
// @description ## Frames
// @description
// @description Each `/snapshot` call renders a new 640x480 frame with a grid, three random
// @description rectangles, a timestamp overlay and a REC indicator. `/status` reports how
// @description many frames have been generated since startup.
// @description
// @description ## Error Responses
// @description
// @description Errors outside `/snapshot` and `/status` use this format:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "NOT_FOUND",
// @description     "message": "Not found",
// @description     "request_id": "3f2c..."
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/mockcam/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:5000
// @BasePath /
// @schemes http
//
// @tag.name Camera
// @tag.description Snapshot, status and landing page
//
// @tag.name Health
// @tag.description Liveness probe for orchestrators
package main
