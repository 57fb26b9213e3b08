/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package adloader

import (
	"fmt"
	"time"
)

// Executor defines how iterations are scheduled
type Executor int

const (
	// SharedIterations constant amount of attackers share fixed amount of iterations
	SharedIterations Executor = iota
	// ConstantArrivalRate iterations start at constant rate, attackers are added when none is idle
	ConstantArrivalRate
)

func (e Executor) String() string {
	switch e {
	case SharedIterations:
		return "shared-iterations"
	case ConstantArrivalRate:
		return "constant-arrival-rate"
	default:
		return fmt.Sprintf("executor(%d)", int(e))
	}
}

const (
	TransportHTTP     = "http"
	TransportFastHTTP = "fasthttp"

	DefaultAttackerTimeoutSec = 10
	DefaultSeedMaxDurationSec = 600
	DefaultPrometheusPort     = 2112
)

// Prometheus exposes runner metrics and pprof on a debug listener
type Prometheus struct {
	Enable bool
	Port   int
}

// RunnerConfig runner configuration
type RunnerConfig struct {
	// TargetUrl target base url
	TargetUrl string
	// Name of a runner instance
	Name string
	// Executor scheduling mode
	Executor Executor
	// Iterations total amount of iterations, SharedIterations only
	Iterations int
	// Rate iterations per second, optional for SharedIterations
	Rate int
	// DurationSec test duration, max duration for SharedIterations
	DurationSec int
	// Attackers pre-allocated attackers
	Attackers int
	// MaxAttackers upper bound of attackers, ConstantArrivalRate only
	MaxAttackers int
	// AttackerTimeout timeout of one Do call, seconds
	AttackerTimeout int
	// ThinkTimeMs attacker pause after every iteration
	ThinkTimeMs int
	// WaitBeforeSec time to wait before start in case we didn't know start criteria
	WaitBeforeSec int
	// DumpTransport dump http requests to log
	DumpTransport bool
	// Transport http|fasthttp
	Transport string
	// LogLevel debug|info, etc.
	LogLevel string
	// LogEncoding json|console
	LogEncoding string
	// Prometheus debug listener, nil means disabled
	Prometheus *Prometheus
}

// Validate checks all settings and returns a list of strings with problems.
func (c RunnerConfig) Validate() (list []string) {
	if c.TargetUrl == "" {
		list = append(list, "please set target url")
	}
	if c.Attackers <= 0 {
		list = append(list, "please set attackers > 0")
	}
	if c.AttackerTimeout < 0 {
		list = append(list, "please set attacker timeout >= 0, seconds")
	}
	if c.ThinkTimeMs < 0 {
		list = append(list, "please set think time >= 0, ms")
	}
	if c.Rate < 0 {
		list = append(list, "please set rate >= 0")
	}
	if c.Transport != "" && c.Transport != TransportHTTP && c.Transport != TransportFastHTTP {
		list = append(list, fmt.Sprintf("unknown transport %q, use %s|%s", c.Transport, TransportHTTP, TransportFastHTTP))
	}
	switch c.Executor {
	case SharedIterations:
		if c.Iterations <= 0 {
			list = append(list, "please set iterations > 0")
		}
		if c.DurationSec < 0 {
			list = append(list, "please set max duration >= 0, seconds")
		}
	case ConstantArrivalRate:
		if c.Rate <= 0 {
			list = append(list, "please set rate > 0")
		}
		if c.DurationSec <= 0 {
			list = append(list, "please set duration > 0, seconds")
		}
		if c.MaxAttackers != 0 && c.MaxAttackers < c.Attackers {
			list = append(list, "please set max attackers >= attackers")
		}
	default:
		list = append(list, fmt.Sprintf("unknown executor %s", c.Executor))
	}
	return
}

// DefaultCfgValues fills optional settings
func (c *RunnerConfig) DefaultCfgValues() {
	if c.Name == "" {
		c.Name = c.Executor.String()
	}
	if c.AttackerTimeout == 0 {
		c.AttackerTimeout = DefaultAttackerTimeoutSec
	}
	if c.Transport == "" {
		c.Transport = TransportHTTP
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogEncoding == "" {
		c.LogEncoding = "console"
	}
	if c.Executor == SharedIterations && c.DurationSec == 0 {
		c.DurationSec = DefaultSeedMaxDurationSec
	}
	if c.Executor == ConstantArrivalRate && c.MaxAttackers == 0 {
		c.MaxAttackers = c.Attackers
	}
	if c.Prometheus != nil && c.Prometheus.Enable && c.Prometheus.Port == 0 {
		c.Prometheus.Port = DefaultPrometheusPort
	}
}

func (c RunnerConfig) attackerTimeout() time.Duration {
	return time.Duration(c.AttackerTimeout) * time.Second
}

func (c RunnerConfig) thinkTime() time.Duration {
	return time.Duration(c.ThinkTimeMs) * time.Millisecond
}

func (c RunnerConfig) duration() time.Duration {
	return time.Duration(c.DurationSec) * time.Second
}

// TargetConfig ad API address
type TargetConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// BaseURL ...
func (c TargetConfig) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Host, c.Port)
}

// SeedPhaseConfig one-time bulk creation of campaigns
type SeedPhaseConfig struct {
	IterationCount int `mapstructure:"iteration_count"`
	Concurrency    int `mapstructure:"concurrency"`
	// Rate 0 means as fast as attackers go
	Rate           int `mapstructure:"rate"`
	ThinkTimeMs    int `mapstructure:"think_time_ms"`
	MaxDurationSec int `mapstructure:"max_duration_sec"`
}

// RunnerConfig seed phase runner config, common settings are taken from base
func (c SeedPhaseConfig) RunnerConfig(t TargetConfig, base RunnerConfig) RunnerConfig {
	cfg := base
	cfg.TargetUrl = t.BaseURL()
	cfg.Executor = SharedIterations
	cfg.Iterations = c.IterationCount
	cfg.Attackers = c.Concurrency
	cfg.Rate = c.Rate
	cfg.ThinkTimeMs = c.ThinkTimeMs
	cfg.DurationSec = c.MaxDurationSec
	if cfg.Name == "" {
		cfg.Name = "seed"
	}
	return cfg
}

// LoadPhaseConfig sustained read load
type LoadPhaseConfig struct {
	Rate                    int `mapstructure:"rate"`
	DurationSeconds         int `mapstructure:"duration_seconds"`
	PreAllocatedConcurrency int `mapstructure:"pre_allocated_concurrency"`
	MaxConcurrency          int `mapstructure:"max_concurrency"`
	ThinkTimeMs             int `mapstructure:"think_time_ms"`
}

// RunnerConfig load phase runner config, common settings are taken from base
func (c LoadPhaseConfig) RunnerConfig(t TargetConfig, base RunnerConfig) RunnerConfig {
	cfg := base
	cfg.TargetUrl = t.BaseURL()
	cfg.Executor = ConstantArrivalRate
	cfg.Rate = c.Rate
	cfg.DurationSec = c.DurationSeconds
	cfg.Attackers = c.PreAllocatedConcurrency
	cfg.MaxAttackers = c.MaxConcurrency
	cfg.ThinkTimeMs = c.ThinkTimeMs
	if cfg.Name == "" {
		cfg.Name = "load"
	}
	return cfg
}
