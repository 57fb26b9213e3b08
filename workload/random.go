/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package workload

import (
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// RandomSource produces a uniform integer in the closed range [min, max].
type RandomSource interface {
	IntRange(min, max int) int
}

type fakerSource struct {
	mu sync.Mutex
	f  *gofakeit.Faker
}

// NewRandomSource creates a goroutine safe source, the same seed gives the same sequence.
// Seed 0 picks a random seed.
func NewRandomSource(seed uint64) RandomSource {
	return &fakerSource{f: gofakeit.New(seed)}
}

func (s *fakerSource) IntRange(min, max int) int {
	if min >= max {
		return min
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.IntRange(min, max)
}

// Clock provides current time, generated campaigns are active for the whole day of Now().
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
