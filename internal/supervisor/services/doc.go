// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

/*
Package services provides suture.Service wrappers for the long-running parts
of the recommendation server.

Each wrapper translates a component's lifecycle into suture's context-aware
Serve pattern and implements fmt.Stringer so supervisor events name it.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the blocking ListenAndServe into Serve
  - Configurable drain timeout for in-flight ranking requests

Maintenance (MaintenanceService):
  - Ticks at a configured interval (default 5m)
  - Expires cached query analyses and exports cache gauges
  - Runs store housekeeping through recommend.Engine.Maintain
  - Failed rounds are counted, never returned, so they do not cause restarts

# Usage

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))
	tree.AddDataService(services.NewMaintenanceService(engine,
	    map[string]services.CacheReporter{"query_analysis": analyses},
	    services.MaintenanceServiceConfig{Interval: cfg.Maintenance.Interval},
	    logger))
*/
package services
