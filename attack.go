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
	"time"
)

// Attack must be implemented by a service client.
type Attack interface {
	// Setup should establish the connection to the service
	// It may want to access the Config of the Runner.
	Setup(c RunnerConfig) error
	// Do performs one request and is executed in a separate goroutine.
	// The context is used to cancel the request on timeout.
	Do(ctx context.Context, token AttackToken) DoResult
	// Teardown can be used to close the connection to the service
	Teardown() error
	// Clone should return a fresh new Attack
	// Make sure the new Attack has values for shared struct fields initialized at Setup.
	Clone(r *Runner) Attack
}

// attack receives schedule signal and attacks target calling Do() method, returning AttackResult with timings,
// exits when schedule is closed
func attack(a Attack, r *Runner, num int) {
	defer r.attackersWg.Done()
	l := r.L.With("attacker", num)
	defer func() {
		if err := a.Teardown(); err != nil {
			l.Errorf("teardown: %s", err)
		}
	}()
	think := r.Cfg.thinkTime()
	for token := range r.next {
		l.Debugf("attacking: %s", token)
		// requests in flight are not cancelled when test ends, only attacker timeout applies
		ctx, cancel := context.WithTimeout(r.requestCtx, r.Cfg.attackerTimeout())
		tStart := time.Now()
		doResult := a.Do(ctx, token)
		tEnd := time.Now()
		if timedOut(ctx, tEnd) {
			doResult.Error = errAttackDoTimedOut
		}
		cancel()

		r.results <- AttackResult{
			AttackToken: token,
			Begin:       tStart,
			End:         tEnd,
			Elapsed:     tEnd.Sub(tStart),
			DoResult:    doResult,
		}
		if think > 0 {
			select {
			case <-r.TimeoutCtx.Done():
			case <-time.After(think):
			}
		}
	}
	l.Debugf("stopping attacker")
}

// timedOut is true when Do returned at or after its deadline,
// transports with their own deadline may return before ctx is done
func timedOut(ctx context.Context, end time.Time) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	dl, ok := ctx.Deadline()
	return ok && !end.Before(dl)
}
