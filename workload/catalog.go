/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package workload

import (
	"fmt"
)

const (
	DefaultAgeMin = 1
	DefaultAgeMax = 100
)

// Catalogs holds every list the generator draws from.
// Write-path catalogs are lists of value sets, an empty set means "unrestricted".
// Read-path catalogs are lists of single values.
type Catalogs struct {
	// AgeMin lowest generated ageStart
	AgeMin int `mapstructure:"age_min"`
	// AgeMax highest generated ageEnd
	AgeMax int `mapstructure:"age_max"`

	GenderSets   [][]string `mapstructure:"gender_sets"`
	CountrySets  [][]string `mapstructure:"country_sets"`
	PlatformSets [][]string `mapstructure:"platform_sets"`

	Genders   []string `mapstructure:"genders"`
	Countries []string `mapstructure:"countries"`
	Platforms []string `mapstructure:"platforms"`
	Limits    []int    `mapstructure:"limits"`
}

// DefaultCatalogs returns catalogs accepted by the ad API.
// Platform and country sets are a curated list, not the full power set.
func DefaultCatalogs() Catalogs {
	return Catalogs{
		AgeMin: DefaultAgeMin,
		AgeMax: DefaultAgeMax,
		GenderSets: [][]string{
			{},
			{"M"},
			{"F"},
		},
		CountrySets: [][]string{
			{},
			{"TW"},
			{"JP"},
			{"TW", "JP"},
		},
		PlatformSets: [][]string{
			{},
			{"android"},
			{"ios"},
			{"web"},
			{"android", "ios"},
			{"ios", "web"},
			{"web", "android"},
			{"android", "ios", "web"},
		},
		Genders:   []string{"M", "F"},
		Countries: []string{"TW", "JP"},
		Platforms: []string{"android", "ios", "web"},
		Limits:    []int{10, 20, 30},
	}
}

// Validate checks all catalogs and returns a list of strings with problems.
func (c Catalogs) Validate() (list []string) {
	if c.AgeMin < DefaultAgeMin || c.AgeMin > DefaultAgeMax {
		list = append(list, fmt.Sprintf("age min must be in [%d, %d]", DefaultAgeMin, DefaultAgeMax))
	}
	if c.AgeMax < DefaultAgeMin || c.AgeMax > DefaultAgeMax {
		list = append(list, fmt.Sprintf("age max must be in [%d, %d]", DefaultAgeMin, DefaultAgeMax))
	}
	if c.AgeMin > c.AgeMax {
		list = append(list, "age min must be <= age max")
	}
	list = append(list, validateSets("gender sets", c.GenderSets)...)
	list = append(list, validateSets("country sets", c.CountrySets)...)
	list = append(list, validateSets("platform sets", c.PlatformSets)...)
	list = append(list, validateValues("genders", c.Genders)...)
	list = append(list, validateValues("countries", c.Countries)...)
	list = append(list, validateValues("platforms", c.Platforms)...)
	if len(c.Limits) == 0 {
		list = append(list, "limits catalog is empty")
	}
	for _, l := range c.Limits {
		if l <= 0 {
			list = append(list, fmt.Sprintf("limit %d must be > 0", l))
		}
	}
	return
}

func validateSets(name string, sets [][]string) (list []string) {
	if len(sets) == 0 {
		return []string{name + " catalog is empty"}
	}
	for i, set := range sets {
		for _, v := range set {
			if v == "" {
				list = append(list, fmt.Sprintf("%s entry %d holds an empty value", name, i))
				break
			}
		}
	}
	return
}

func validateValues(name string, values []string) (list []string) {
	if len(values) == 0 {
		return []string{name + " catalog is empty"}
	}
	for i, v := range values {
		if v == "" {
			list = append(list, fmt.Sprintf("%s entry %d is empty", name, i))
		}
	}
	return
}
