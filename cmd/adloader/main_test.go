/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecuteErrorGoesToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	code := execute(context.Background(), []string{"seed", "--config", missing}, &stdout, &stderr)

	require.Equal(t, 1, code)
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "unable to read config")
}

func TestExecuteUnknownAttacker(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{"load", "--attacker", "nope"}, &stdout, &stderr)

	require.Equal(t, 1, code)
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "unknown attacker: nope")
}

func TestExecuteListsAttackers(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{"attackers"}, &stdout, &stderr)

	require.Equal(t, 0, code)
	require.Equal(t, "create_campaign\nquery_campaigns\n", stdout.String())
	require.Empty(t, stderr.String())
}
