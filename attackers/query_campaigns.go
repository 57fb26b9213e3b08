/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package attackers

import (
	"context"
	"net/http"

	"github.com/insolar/adloader"
	"github.com/insolar/adloader/workload"
)

const QueryCampaignsLabel = "query_campaigns"

func init() {
	adloader.RegisterAttacker(QueryCampaignsLabel, &QueryCampaigns{})
}

// QueryCampaigns queries active campaigns with generated filters
type QueryCampaigns struct {
	*adloader.Runner
	Generator *workload.Generator
	url       string
}

func (a *QueryCampaigns) WithGenerator(g *workload.Generator) adloader.Attack {
	return &QueryCampaigns{Generator: g}
}

func (a *QueryCampaigns) Clone(r *adloader.Runner) adloader.Attack {
	return &QueryCampaigns{Runner: r, Generator: a.Generator}
}

func (a *QueryCampaigns) Setup(c adloader.RunnerConfig) error {
	if a.Generator == nil {
		return errNoGenerator
	}
	a.url = campaignsURL(c.TargetUrl)
	return nil
}

func (a *QueryCampaigns) Do(ctx context.Context, _ adloader.AttackToken) adloader.DoResult {
	q := a.Generator.NextQueryParams()
	return send(ctx, a.Runner, QueryCampaignsLabel, http.MethodGet, a.url+"?"+q.Encode(), nil)
}

func (a *QueryCampaigns) Teardown() error {
	return nil
}
