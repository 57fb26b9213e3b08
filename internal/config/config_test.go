/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/insolar/adloader"
	"github.com/insolar/adloader/workload"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "http://localhost:8080", c.Target.BaseURL())
	require.Equal(t, adloader.SeedPhaseConfig{
		IterationCount: 1000,
		Concurrency:    10,
		MaxDurationSec: adloader.DefaultSeedMaxDurationSec,
	}, c.Seed)
	require.Equal(t, adloader.LoadPhaseConfig{
		Rate:                    24000,
		DurationSeconds:         90,
		PreAllocatedConcurrency: 100,
		MaxConcurrency:          15000,
		ThinkTimeMs:             1000,
	}, c.Load)
	require.Equal(t, adloader.TransportHTTP, c.Transport)
	require.Equal(t, adloader.DefaultAttackerTimeoutSec, c.AttackerTimeout)
	def := workload.DefaultCatalogs()
	require.Equal(t, def.Genders, c.Catalogs.Genders)
	require.Equal(t, def.Limits, c.Catalogs.Limits)
	require.Len(t, c.Catalogs.PlatformSets, len(def.PlatformSets))
	require.Empty(t, c.Catalogs.Validate())
	_, err = workload.NewGenerator(c.Catalogs, workload.NewRandomSource(1))
	require.NoError(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adloader.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
target:
  host: ads.internal
  port: 9090
seed:
  iteration_count: 50
  concurrency: 2
load:
  rate: 100
transport: fasthttp
random_seed: 7
catalogs:
  countries: [TW]
  limits: [5]
`), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "http://ads.internal:9090", c.Target.BaseURL())
	require.Equal(t, 50, c.Seed.IterationCount)
	require.Equal(t, 2, c.Seed.Concurrency)
	require.Equal(t, 100, c.Load.Rate)
	require.Equal(t, 90, c.Load.DurationSeconds)
	require.Equal(t, adloader.TransportFastHTTP, c.Transport)
	require.Equal(t, uint64(7), c.RandomSeed)
	require.Equal(t, []string{"TW"}, c.Catalogs.Countries)
	require.Equal(t, []int{5}, c.Catalogs.Limits)
	require.Equal(t, []string{"M", "F"}, c.Catalogs.Genders)

	seed := c.SeedRunnerConfig()
	require.Equal(t, adloader.SharedIterations, seed.Executor)
	require.Equal(t, "http://ads.internal:9090", seed.TargetUrl)
	require.Equal(t, adloader.TransportFastHTTP, seed.Transport)
	load := c.LoadRunnerConfig()
	require.Equal(t, adloader.ConstantArrivalRate, load.Executor)
	require.Equal(t, 100, load.Rate)
	require.Empty(t, load.Validate())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ADLOADER_TARGET_HOST", "10.0.0.1")
	t.Setenv("ADLOADER_LOAD_RATE", "500")
	t.Setenv("ADLOADER_LOG_LEVEL", "debug")

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "10.0.0.1", c.Target.Host)
	require.Equal(t, 500, c.Load.Rate)
	require.Equal(t, "debug", c.BaseRunnerConfig().LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
