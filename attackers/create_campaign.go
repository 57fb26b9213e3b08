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

const CreateCampaignLabel = "create_campaign"

func init() {
	adloader.RegisterAttacker(CreateCampaignLabel, &CreateCampaign{})
}

// CreateCampaign seeds the API with a generated campaign per iteration,
// iteration number goes to the campaign title
type CreateCampaign struct {
	*adloader.Runner
	Generator *workload.Generator
	// Clock defines campaign active day, system clock when nil
	Clock workload.Clock
	url   string
}

func (a *CreateCampaign) WithGenerator(g *workload.Generator) adloader.Attack {
	return &CreateCampaign{Generator: g, Clock: a.Clock}
}

func (a *CreateCampaign) Clone(r *adloader.Runner) adloader.Attack {
	return &CreateCampaign{Runner: r, Generator: a.Generator, Clock: a.Clock}
}

func (a *CreateCampaign) Setup(c adloader.RunnerConfig) error {
	if a.Generator == nil {
		return errNoGenerator
	}
	if a.Clock == nil {
		a.Clock = workload.SystemClock{}
	}
	a.url = campaignsURL(c.TargetUrl)
	return nil
}

func (a *CreateCampaign) Do(ctx context.Context, token adloader.AttackToken) adloader.DoResult {
	payload := a.Generator.NextCreatePayload(token.Iteration, a.Clock)
	body, err := json.Marshal(payload)
	if err != nil {
		return adloader.DoResult{
			RequestLabel: CreateCampaignLabel,
			Error:        err.Error(),
		}
	}
	return send(ctx, a.Runner, CreateCampaignLabel, http.MethodPost, a.url, body)
}

func (a *CreateCampaign) Teardown() error {
	return nil
}
