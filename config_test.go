/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package adloader

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunnerConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *RunnerConfig)
		problem string
	}{
		{"no target", func(c *RunnerConfig) { c.TargetUrl = "" }, "please set target url"},
		{"no attackers", func(c *RunnerConfig) { c.Attackers = 0 }, "please set attackers > 0"},
		{"no iterations", func(c *RunnerConfig) { c.Iterations = 0 }, "please set iterations > 0"},
		{"negative think time", func(c *RunnerConfig) { c.ThinkTimeMs = -1 }, "please set think time >= 0, ms"},
		{"bad transport", func(c *RunnerConfig) { c.Transport = "grpc" }, `unknown transport "grpc", use http|fasthttp`},
		{"arrival rate without rate", func(c *RunnerConfig) { c.Executor = ConstantArrivalRate }, "please set rate > 0"},
		{"arrival rate max below attackers", func(c *RunnerConfig) {
			c.Executor = ConstantArrivalRate
			c.Rate = 10
			c.MaxAttackers = 1
		}, "please set max attackers >= attackers"},
		{"unknown executor", func(c *RunnerConfig) { c.Executor = Executor(7) }, "unknown executor executor(7)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultRunnerCfg()
			tt.mutate(c)
			require.Contains(t, c.Validate(), tt.problem)
		})
	}
	require.Empty(t, DefaultRunnerCfg().Validate())
}

func TestRunnerConfigDefaults(t *testing.T) {
	c := &RunnerConfig{Executor: SharedIterations, Prometheus: &Prometheus{Enable: true}}
	c.DefaultCfgValues()
	require.Equal(t, "shared-iterations", c.Name)
	require.Equal(t, DefaultAttackerTimeoutSec, c.AttackerTimeout)
	require.Equal(t, DefaultSeedMaxDurationSec, c.DurationSec)
	require.Equal(t, TransportHTTP, c.Transport)
	require.Equal(t, DefaultPrometheusPort, c.Prometheus.Port)

	c = &RunnerConfig{Executor: ConstantArrivalRate, Attackers: 7}
	c.DefaultCfgValues()
	require.Equal(t, 7, c.MaxAttackers)
	require.Equal(t, 0, c.DurationSec)
}

func TestPhaseRunnerConfigs(t *testing.T) {
	target := TargetConfig{Host: "api.local", Port: 9000}
	base := RunnerConfig{AttackerTimeout: 3, Transport: TransportFastHTTP}

	seed := SeedPhaseConfig{IterationCount: 1000, Concurrency: 10, Rate: 5, MaxDurationSec: 60}.RunnerConfig(target, base)
	require.Equal(t, "http://api.local:9000", seed.TargetUrl)
	require.Equal(t, SharedIterations, seed.Executor)
	require.Equal(t, 1000, seed.Iterations)
	require.Equal(t, 10, seed.Attackers)
	require.Equal(t, 5, seed.Rate)
	require.Equal(t, 60, seed.DurationSec)
	require.Equal(t, "seed", seed.Name)
	require.Equal(t, 3, seed.AttackerTimeout)
	require.Equal(t, TransportFastHTTP, seed.Transport)

	load := LoadPhaseConfig{Rate: 24000, DurationSeconds: 90, PreAllocatedConcurrency: 100, MaxConcurrency: 15000, ThinkTimeMs: 1000}.RunnerConfig(target, base)
	require.Equal(t, ConstantArrivalRate, load.Executor)
	require.Equal(t, 24000, load.Rate)
	require.Equal(t, 90, load.DurationSec)
	require.Equal(t, 100, load.Attackers)
	require.Equal(t, 15000, load.MaxAttackers)
	require.Equal(t, 1000, load.ThinkTimeMs)
	require.Equal(t, "load", load.Name)
	require.Empty(t, load.Validate())
}
