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
	"go.uber.org/zap/zapcore"
)

func TestLoggerSetup(t *testing.T) {
	for _, enc := range []string{"json", "console"} {
		l, err := setupLogger(enc, "debug")
		require.NoError(t, err, enc)
		require.True(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
	}
	l, err := NewLogger(&RunnerConfig{LogEncoding: "json", LogLevel: "warn"})
	require.NoError(t, err)
	require.False(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))

	_, err = setupLogger("json", "loud")
	require.Error(t, err)
}

func TestLoggerWithDoesNotMutate(t *testing.T) {
	l, logs := observedLogger()
	child := l.With("attacker", 1)
	l.Infof("parent")
	child.Infof("child")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Empty(t, entries[0].Context)
	require.Len(t, entries[1].Context, 1)
	require.Equal(t, "attacker", entries[1].Context[0].Key)
}
