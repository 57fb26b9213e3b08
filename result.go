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

// AttackToken schedule signal, one token is one iteration
type AttackToken struct {
	// Iteration sequence number of the iteration, starts from 0
	Iteration int
	// Tick second of the test in which iteration was scheduled, starts from 1
	Tick int
}

func (a AttackToken) String() string {
	return fmt.Sprintf("iteration: %d, tick: %d", a.Iteration, a.Tick)
}

type AttackResult struct {
	AttackToken AttackToken
	Begin, End  time.Time
	Elapsed     time.Duration
	DoResult    DoResult
}

func (a AttackResult) String() string {
	return fmt.Sprintf(
		"Begin: %s, End: %s, Elapsed: %s, token: [%s], doResult: %v",
		a.Begin.Format(time.RFC3339),
		a.End.Format(time.RFC3339),
		a.Elapsed,
		a.AttackToken,
		a.DoResult,
	)
}

// DoResult is the return value of a Do call on an Attack.
type DoResult struct {
	// Label identifying the request that was send which is only used for reporting the Metrics.
	RequestLabel string
	// The error that happened when sending the request or receiving the response.
	Error string
	// The HTTP status code.
	StatusCode int
	// Number of bytes transferred when sending the request.
	BytesIn int64
	// Number of bytes transferred when receiving the response.
	BytesOut int64
}

// Summary is returned by Runner.Run
type Summary struct {
	// Total metrics of all iterations
	Total *Metrics
	// MaxTickRate max rps among ticks
	MaxTickRate float64
	// DroppedIterations iterations not started because all attackers were busy
	DroppedIterations int64
	// PeakAttackers amount of attackers at the end of the test
	PeakAttackers int
	// UniqErrors error message to count
	UniqErrors map[string]int
}
