/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package adloader

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPromReporterTick(t *testing.T) {
	p := NewPromReporter("seed")
	m := NewMetrics()
	m.add(testResult(time.Now(), 40*time.Millisecond, DoResult{RequestLabel: "create_campaign", StatusCode: 200}))
	m.update()
	m.Rate = 1
	p.reportTick(m)
	p.reportAttackers(3)
	p.reportDropped()
	p.reportDropped()

	require.Equal(t, 1.0, testutil.ToFloat64(p.tickRPS))
	require.Equal(t, 1.0, testutil.ToFloat64(p.tickSuccessRatio))
	require.Equal(t, 40.0, testutil.ToFloat64(p.tickMax))
	require.Equal(t, 3.0, testutil.ToFloat64(p.attackers))
	require.Equal(t, 2.0, testutil.ToFloat64(p.dropped))
}

func TestPromReporterRequests(t *testing.T) {
	p := NewPromReporter("load")
	p.reportResult(AttackResult{DoResult: DoResult{RequestLabel: "query_campaigns", StatusCode: 200}})
	p.reportResult(AttackResult{DoResult: DoResult{RequestLabel: "query_campaigns", StatusCode: 200}})
	p.reportResult(AttackResult{DoResult: DoResult{RequestLabel: "query_campaigns", StatusCode: 500, Error: "unexpected status code: 500"}})
	p.reportResult(AttackResult{DoResult: DoResult{RequestLabel: "query_campaigns", Error: "connection refused"}})

	require.Equal(t, 2.0, testutil.ToFloat64(p.requests.WithLabelValues("query_campaigns", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(p.requests.WithLabelValues("query_campaigns", "500")))
	require.Equal(t, 1.0, testutil.ToFloat64(p.requests.WithLabelValues("query_campaigns", "error")))
}

func TestDebugHandlerServesMetrics(t *testing.T) {
	p := NewPromReporter("load")
	p.reportAttackers(5)
	srv := httptest.NewServer(debugHandler(p.Registry))
	defer srv.Close()

	res, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `adloader_attackers{runner="load"} 5`)

	res2, err := http.Get(srv.URL + "/debug/pprof/")
	require.NoError(t, err)
	res2.Body.Close()
	require.Equal(t, http.StatusOK, res2.StatusCode)
}
