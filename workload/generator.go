/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

// Package workload generates randomized campaigns and campaign queries for the ad API.
package workload

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

const (
	TitleFormat = "AD %d"
	// QueryOffset read queries never paginate
	QueryOffset = 0
)

// Generator produces request data, it holds no mutable state
// and is safe for concurrent use as long as its RandomSource is.
type Generator struct {
	cat Catalogs
	rnd RandomSource
}

// NewGenerator validates catalogs and keeps a private copy of them.
func NewGenerator(c Catalogs, rnd RandomSource) (*Generator, error) {
	if rnd == nil {
		return nil, fmt.Errorf("%w: random source is nil", ErrInvalidConfiguration)
	}
	if list := c.Validate(); len(list) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfiguration, strings.Join(list, ", "))
	}
	var own Catalogs
	if err := copier.CopyWithOption(&own, &c, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return &Generator{cat: own, rnd: rnd}, nil
}

// NextCreatePayload generates a campaign active for the whole current day of clock.
func (g *Generator) NextCreatePayload(index int, clock Clock) CreateCampaignPayload {
	ageStart := g.rnd.IntRange(g.cat.AgeMin, g.cat.AgeMax)
	ageEnd := g.rnd.IntRange(ageStart, g.cat.AgeMax)
	cond := TargetingCondition{
		AgeStart: ageStart,
		AgeEnd:   ageEnd,
		Gender:   g.pickSet(g.cat.GenderSets),
		Country:  g.pickSet(g.cat.CountrySets),
		Platform: g.pickSet(g.cat.PlatformSets),
	}
	start, end := dayBounds(clock.Now())
	return CreateCampaignPayload{
		Title:      fmt.Sprintf(TitleFormat, index),
		StartAt:    Timestamp{start},
		EndAt:      Timestamp{end},
		Conditions: []TargetingCondition{cond},
	}
}

// NextQueryParams generates filters for a campaigns query, read path never uses empty filters.
func (g *Generator) NextQueryParams() QueryParams {
	return QueryParams{
		Gender:   g.pick(g.cat.Genders),
		Country:  g.pick(g.cat.Countries),
		Platform: g.pick(g.cat.Platforms),
		Offset:   QueryOffset,
		Limit:    g.cat.Limits[g.index(len(g.cat.Limits))],
	}
}

func (g *Generator) index(n int) int {
	return g.rnd.IntRange(0, n-1)
}

func (g *Generator) pick(values []string) string {
	return values[g.index(len(values))]
}

// pickSet returns a fresh copy, so payload consumers can't alter catalogs
func (g *Generator) pickSet(sets [][]string) []string {
	set := sets[g.index(len(sets))]
	out := make([]string, len(set))
	copy(out, set)
	return out
}

// dayBounds local midnight and 23:59:59.999 of the day t falls on, in t's location.
// When midnight is skipped by a DST jump start moves forward to the first hour of the same day.
func dayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	for h := 1; !sameDate(start, y, m, d) && h < 24; h++ {
		start = time.Date(y, m, d, h, 0, 0, 0, t.Location())
	}
	end := time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
	return start, end
}

func sameDate(t time.Time, y int, m time.Month, d int) bool {
	ty, tm, td := t.Date()
	return ty == y && tm == m && td == d
}
