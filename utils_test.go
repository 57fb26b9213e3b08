/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package adloader

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

func testLogger(t *testing.T) *Logger {
	return NewZapLogger(zaptest.NewLogger(t))
}

func DefaultRunnerCfg() *RunnerConfig {
	return &RunnerConfig{
		TargetUrl:       "http://localhost:8080",
		Name:            "test_runner",
		Executor:        SharedIterations,
		Iterations:      20,
		Attackers:       2,
		AttackerTimeout: 1,
		DurationSec:     5,
	}
}

func newTestRunner(t *testing.T, cfg *RunnerConfig, c *controlled) *Runner {
	t.Helper()
	r, err := NewRunner(cfg, &ControlAttackerMock{c: c}, testLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	return r
}
