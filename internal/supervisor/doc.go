// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

/*
Package supervisor runs the recommendation server's long-lived services
under a suture v4 supervisor tree.

# Overview

	RootSupervisor ("recommendation-engine")
	├── DataSupervisor ("data-layer")
	│   └── MaintenanceService (cache expiry, BadgerDB value log GC)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with suture's decaying failure counter. The
layers fail independently: a maintenance crash is restarted inside the
data layer while the API keeps serving, and ranking itself degrades
through its fallback tiers rather than through restarts.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewMaintenanceService(engine, caches, maintCfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("supervisor stopped")
	}

Supervisor events (starts, failures, backoff) are logged through
sutureslog, bridged to zerolog by logging.NewSlogLogger.

# Configuration

	FailureThreshold: 5    failures before backoff
	FailureDecay:     30   seconds for the failure counter to decay
	FailureBackoff:   15s  wait once the threshold is exceeded
	ShutdownTimeout:  10s  per-service stop timeout

# Shutdown

Cancel the context passed to Serve. If a service does not return within
ShutdownTimeout, UnstoppedServiceReport names it.
*/
package supervisor
