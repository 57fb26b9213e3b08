/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package adloader

import (
	"os"
	"os/signal"
	"syscall"
)

// handleShutdownSignal stops scheduling on SIGINT/SIGTERM, requests in flight are finished
func (r *Runner) handleShutdownSignal() (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-r.TimeoutCtx.Done():
			return
		case <-sigs:
			r.L.Infof("exit signal received, stopping")
			r.CancelFunc()
		}
	}()
	return func() {
		signal.Stop(sigs)
	}
}
