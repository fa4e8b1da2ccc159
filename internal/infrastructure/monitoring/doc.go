/*
Package monitoring provides Prometheus metrics for hyprsession.

# Overview

Metrics cover the three moving parts of the program: compositor commands
(count, status, latency), the event stream (events by kind, reconnects) and
restoration runs (runs by status, windows by outcome).

Each Metrics value owns a private registry. A nil *Metrics is accepted
everywhere and records nothing.

# Usage

	metrics := monitoring.NewMetrics()
	client := hypr.NewClient(endpoint).WithMetrics(metrics)

	timer := monitoring.NewTimer(metrics, "dispatch:exec")
	// ... perform operation ...
	timer.Stop("success")

# Metrics Endpoint

	http.Handle("/metrics", metrics.Handler())
*/
package monitoring
