/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package adloader

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttackerRegistry(t *testing.T) {
	proto := &ControlAttackerMock{c: newControlled(0)}
	RegisterAttacker("control_mock", proto)

	a, err := AttackerFromString("control_mock")
	require.NoError(t, err)
	require.Same(t, proto, a)
	require.Contains(t, RegisteredAttackers(), "control_mock")

	_, err = AttackerFromString("nope")
	require.ErrorIs(t, err, ErrUnknownAttacker)
}
