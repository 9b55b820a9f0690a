// Package prom exports engine metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	eng := hvgo.New(hvgo.WithMetricsCollector(prom.NewCollector(reg)))
package prom
