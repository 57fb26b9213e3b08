/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package adloader

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PromReporter reports runner ticks, every runner has its own registry
type PromReporter struct {
	Registry *prometheus.Registry

	tickSuccessRatio prometheus.Gauge
	tickP50          prometheus.Gauge
	tickP95          prometheus.Gauge
	tickP99          prometheus.Gauge
	tickMax          prometheus.Gauge
	tickRPS          prometheus.Gauge
	attackers        prometheus.Gauge
	requests         *prometheus.CounterVec
	dropped          prometheus.Counter
}

func NewPromReporter(runnerName string) *PromReporter {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	labels := prometheus.Labels{"runner": runnerName}
	return &PromReporter{
		Registry: reg,
		tickSuccessRatio: f.NewGauge(prometheus.GaugeOpts{
			Name:        "adloader_tick_success_ratio",
			Help:        "Success requests ratio",
			ConstLabels: labels,
		}),
		tickP50: f.NewGauge(prometheus.GaugeOpts{
			Name:        "adloader_tick_p50",
			Help:        "Response time 50 Percentile",
			ConstLabels: labels,
		}),
		tickP95: f.NewGauge(prometheus.GaugeOpts{
			Name:        "adloader_tick_p95",
			Help:        "Response time 95 Percentile",
			ConstLabels: labels,
		}),
		tickP99: f.NewGauge(prometheus.GaugeOpts{
			Name:        "adloader_tick_p99",
			Help:        "Response time 99 Percentile",
			ConstLabels: labels,
		}),
		tickMax: f.NewGauge(prometheus.GaugeOpts{
			Name:        "adloader_tick_max",
			Help:        "Response time MAX",
			ConstLabels: labels,
		}),
		tickRPS: f.NewGauge(prometheus.GaugeOpts{
			Name:        "adloader_tick_rps",
			Help:        "Requests per second rate",
			ConstLabels: labels,
		}),
		attackers: f.NewGauge(prometheus.GaugeOpts{
			Name:        "adloader_attackers",
			Help:        "Amount of attackers",
			ConstLabels: labels,
		}),
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "adloader_requests_total",
			Help:        "Requests by label and status code",
			ConstLabels: labels,
		}, []string{"label", "code"}),
		dropped: f.NewCounter(prometheus.CounterOpts{
			Name:        "adloader_dropped_iterations_total",
			Help:        "Iterations not started because all attackers were busy",
			ConstLabels: labels,
		}),
	}
}

func (m *PromReporter) reportResult(res AttackResult) {
	code := strconv.Itoa(res.DoResult.StatusCode)
	if res.DoResult.Error != "" && res.DoResult.StatusCode == 0 {
		code = "error"
	}
	m.requests.WithLabelValues(res.DoResult.RequestLabel, code).Inc()
}

func (m *PromReporter) reportTick(tm *Metrics) {
	m.tickP50.Set(float64(tm.Latencies.P50.Milliseconds()))
	m.tickP95.Set(float64(tm.Latencies.P95.Milliseconds()))
	m.tickP99.Set(float64(tm.Latencies.P99.Milliseconds()))
	m.tickMax.Set(float64(tm.Latencies.Max.Milliseconds()))
	m.tickSuccessRatio.Set(tm.Success)
	m.tickRPS.Set(tm.Rate)
}

func (m *PromReporter) reportAttackers(n int) {
	m.attackers.Set(float64(n))
}

func (m *PromReporter) reportDropped() {
	m.dropped.Inc()
}
