/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/insolar/adloader"
	"github.com/insolar/adloader/workload"
)

const EnvPrefix = "ADLOADER"

// LogConfig ...
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// PrometheusConfig debug listener with /metrics and pprof
type PrometheusConfig struct {
	Enable bool `mapstructure:"enable"`
	Port   int  `mapstructure:"port"`
}

// Config holds all configuration (file + env overrides)
type Config struct {
	Target adloader.TargetConfig    `mapstructure:"target"`
	Seed   adloader.SeedPhaseConfig `mapstructure:"seed"`
	Load   adloader.LoadPhaseConfig `mapstructure:"load"`

	Log        LogConfig        `mapstructure:"log"`
	Prometheus PrometheusConfig `mapstructure:"prometheus"`

	// Transport http|fasthttp
	Transport       string `mapstructure:"transport"`
	DumpTransport   bool   `mapstructure:"dump_transport"`
	AttackerTimeout int    `mapstructure:"attacker_timeout"`
	WaitBeforeSec   int    `mapstructure:"wait_before_sec"`
	// RandomSeed 0 means random, fixed seed makes generated data reproducible
	RandomSeed uint64            `mapstructure:"random_seed"`
	Catalogs   workload.Catalogs `mapstructure:"catalogs"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("target.host", "localhost")
	v.SetDefault("target.port", 8080)

	v.SetDefault("seed.iteration_count", 1000)
	v.SetDefault("seed.concurrency", 10)
	v.SetDefault("seed.rate", 0)
	v.SetDefault("seed.think_time_ms", 0)
	v.SetDefault("seed.max_duration_sec", adloader.DefaultSeedMaxDurationSec)

	v.SetDefault("load.rate", 24000)
	v.SetDefault("load.duration_seconds", 90)
	v.SetDefault("load.pre_allocated_concurrency", 100)
	v.SetDefault("load.max_concurrency", 15000)
	v.SetDefault("load.think_time_ms", 1000)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("prometheus.enable", false)
	v.SetDefault("prometheus.port", adloader.DefaultPrometheusPort)

	v.SetDefault("transport", adloader.TransportHTTP)
	v.SetDefault("dump_transport", false)
	v.SetDefault("attacker_timeout", adloader.DefaultAttackerTimeoutSec)
	v.SetDefault("wait_before_sec", 0)
	v.SetDefault("random_seed", 0)

	c := workload.DefaultCatalogs()
	v.SetDefault("catalogs.age_min", c.AgeMin)
	v.SetDefault("catalogs.age_max", c.AgeMax)
	v.SetDefault("catalogs.gender_sets", c.GenderSets)
	v.SetDefault("catalogs.country_sets", c.CountrySets)
	v.SetDefault("catalogs.platform_sets", c.PlatformSets)
	v.SetDefault("catalogs.genders", c.Genders)
	v.SetDefault("catalogs.countries", c.Countries)
	v.SetDefault("catalogs.platforms", c.Platforms)
	v.SetDefault("catalogs.limits", c.Limits)
}

// Load reads config file when path is set, ADLOADER_* env vars override file values
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	return cfg, nil
}

// BaseRunnerConfig settings shared by both phases
func (c Config) BaseRunnerConfig() adloader.RunnerConfig {
	return adloader.RunnerConfig{
		AttackerTimeout: c.AttackerTimeout,
		WaitBeforeSec:   c.WaitBeforeSec,
		DumpTransport:   c.DumpTransport,
		Transport:       c.Transport,
		LogLevel:        c.Log.Level,
		LogEncoding:     c.Log.Encoding,
		Prometheus: &adloader.Prometheus{
			Enable: c.Prometheus.Enable,
			Port:   c.Prometheus.Port,
		},
	}
}

// SeedRunnerConfig ...
func (c Config) SeedRunnerConfig() adloader.RunnerConfig {
	return c.Seed.RunnerConfig(c.Target, c.BaseRunnerConfig())
}

// LoadRunnerConfig ...
func (c Config) LoadRunnerConfig() adloader.RunnerConfig {
	return c.Load.RunnerConfig(c.Target, c.BaseRunnerConfig())
}
