// Copyright (C) 2025 MoltBridge
//
// This file is part of moltbridge-go.
//
// moltbridge-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// moltbridge-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with moltbridge-go.  If not, see <https://www.gnu.org/licenses/>.

// Package metrics exposes Prometheus instrumentation for request signing,
// verification, transport retries and proof-of-work solving.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler is an alias for the default Prometheus HTTP handler.
var Handler = promhttp.Handler()

var (
	requestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "moltbridge_requests_total",
		Help: "Total number of API requests by method, path and outcome.",
	}, []string{"method", "path", "outcome"})

	requestDurationHist = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "moltbridge_request_duration_milliseconds",
		Help:    "API request latencies in milliseconds, including retries.",
		Buckets: prometheus.ExponentialBuckets(10, 10, 5),
	}, []string{"method", "path"})

	retryCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "moltbridge_request_retries_total",
		Help: "Total number of retried request attempts.",
	}, []string{"method", "path"})

	verificationCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "moltbridge_verifications_total",
		Help: "Total number of server-side signature verifications by outcome code.",
	}, []string{"code"})

	powDurationHist = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "moltbridge_pow_solve_duration_milliseconds",
		Help:    "Proof-of-work solving latencies in milliseconds.",
		Buckets: prometheus.ExponentialBuckets(1, 10, 6),
	}, []string{"difficulty"})
)

// ObserveRequest records a finished request with its total duration.
func ObserveRequest(method, path, outcome string, milliseconds float64) {
	requestCount.WithLabelValues(method, path, outcome).Inc()
	requestDurationHist.WithLabelValues(method, path).Observe(milliseconds)
}

// ObserveRetry records one retried attempt.
func ObserveRetry(method, path string) {
	retryCount.WithLabelValues(method, path).Inc()
}

// ObserveVerification records a signature verification outcome. The code is
// "ok" on success, or the failure code otherwise.
func ObserveVerification(code string) {
	verificationCount.WithLabelValues(code).Inc()
}

// ObservePoWSolve records a proof-of-work solve duration.
func ObservePoWSolve(difficulty string, milliseconds float64) {
	powDurationHist.WithLabelValues(difficulty).Observe(milliseconds)
}

func init() {
	prometheus.MustRegister(requestCount)
	prometheus.MustRegister(requestDurationHist)
	prometheus.MustRegister(retryCount)
	prometheus.MustRegister(verificationCount)
	prometheus.MustRegister(powDurationHist)
}
