// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

// Package metrics owns the Prometheus registry of the API server.
//
// A private registry is used instead of the global default so tests can
// build as many independent instances as they need.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/englishproject/englishteacher-api/internal/platform/constants"
)

// Login results recorded by [Metrics.RecordLogin].
const (
	LoginSucceeded = "success"
	LoginRejected  = "invalid_credentials"
	LoginFailed    = "error"
)

// Metrics holds the service's custom collectors.
type Metrics struct {
	registry *prometheus.Registry

	AuthGateTotal *prometheus.CounterVec
	LoginTotal    *prometheus.CounterVec
}

// New creates a registry with the Go runtime and process collectors plus
// the authentication counters.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,
		AuthGateTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: constants.MetricsNamespace,
				Name:      "auth_gate_total",
				Help:      "Requests evaluated by the authentication gate, by outcome",
			},
			[]string{"outcome"},
		),
		LoginTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: constants.MetricsNamespace,
				Name:      "login_total",
				Help:      "Login attempts by result",
			},
			[]string{"result"},
		),
	}

	registry.MustRegister(m.AuthGateTotal)
	registry.MustRegister(m.LoginTotal)

	return m
}

// RecordAuthOutcome counts one authentication gate evaluation.
func (m *Metrics) RecordAuthOutcome(outcome string) {
	m.AuthGateTotal.WithLabelValues(outcome).Inc()
}

// RecordLogin counts one login attempt.
func (m *Metrics) RecordLogin(result string) {
	m.LoginTotal.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
