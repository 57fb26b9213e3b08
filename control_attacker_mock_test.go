/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package adloader

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

const mockLabel = "mock"

// controlled state shared between all clones of ControlAttackerMock
type controlled struct {
	// Sleep Do duration, ms
	Sleep int64
	// Error returned by every Do
	Error string
	// SetupError returned by every Setup
	SetupError error

	calls      int64
	teardowns  int64
	mu         sync.Mutex
	iterations map[int]int
}

func newControlled(sleepMs int64) *controlled {
	return &controlled{Sleep: sleepMs, iterations: make(map[int]int)}
}

func (c *controlled) Calls() int64 {
	return atomic.LoadInt64(&c.calls)
}

func (c *controlled) Iterations() map[int]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[int]int, len(c.iterations))
	for k, v := range c.iterations {
		out[k] = v
	}
	return out
}

type ControlAttackerMock struct {
	*Runner
	c *controlled
}

func (a *ControlAttackerMock) Clone(r *Runner) Attack {
	return &ControlAttackerMock{Runner: r, c: a.c}
}

func (a *ControlAttackerMock) Setup(_ RunnerConfig) error {
	return a.c.SetupError
}

func (a *ControlAttackerMock) Do(ctx context.Context, token AttackToken) DoResult {
	atomic.AddInt64(&a.c.calls, 1)
	a.c.mu.Lock()
	a.c.iterations[token.Iteration]++
	a.c.mu.Unlock()
	select {
	case <-ctx.Done():
		return DoResult{RequestLabel: mockLabel, Error: ctx.Err().Error()}
	case <-time.After(time.Duration(atomic.LoadInt64(&a.c.Sleep)) * time.Millisecond):
	}
	if a.c.Error != "" {
		return DoResult{RequestLabel: mockLabel, Error: a.c.Error}
	}
	return DoResult{RequestLabel: mockLabel, StatusCode: 200}
}

func (a *ControlAttackerMock) Teardown() error {
	atomic.AddInt64(&a.c.teardowns, 1)
	return nil
}

var errMockSetup = errors.New("mock setup failed")
