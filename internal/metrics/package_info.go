// Package metrics records comparison outcomes with OpenCensus and optionally exposes them to Prometheus.
package metrics
