/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package adloader

import (
	"fmt"
	"sort"
	"sync"
)

var (
	atkRegistryMu sync.RWMutex
	atkRegistry   = make(map[string]Attack)
)

// RegisterAttacker makes attacker prototype available by name
func RegisterAttacker(name string, atk Attack) {
	atkRegistryMu.Lock()
	defer atkRegistryMu.Unlock()
	atkRegistry[name] = atk
}

// AttackerFromString returns registered attacker prototype
func AttackerFromString(name string) (Attack, error) {
	atkRegistryMu.RLock()
	defer atkRegistryMu.RUnlock()
	atk, ok := atkRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAttacker, name)
	}
	return atk, nil
}

// RegisteredAttackers sorted names of registered attackers
func RegisteredAttackers() []string {
	atkRegistryMu.RLock()
	defer atkRegistryMu.RUnlock()
	names := make([]string, 0, len(atkRegistry))
	for name := range atkRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
