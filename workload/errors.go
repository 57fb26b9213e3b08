/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package workload

import (
	"errors"
)

// ErrInvalidConfiguration is returned when the generator catalogs can't produce valid data.
var ErrInvalidConfiguration = errors.New("invalid workload configuration")
