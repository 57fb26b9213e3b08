/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

// Package attackers contains attacks against the ad API.
package attackers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"

	"github.com/insolar/adloader"
	"github.com/insolar/adloader/workload"
)

const (
	// CampaignsPath ad API campaigns resource
	CampaignsPath   = "/api/v1/ad"
	jsonContentType = "application/json"
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	errNoGenerator = errors.New("attacker has no workload generator")
)

// Generated is implemented by attackers which need a workload generator,
// registered prototypes have none until WithGenerator is called.
type Generated interface {
	WithGenerator(g *workload.Generator) adloader.Attack
}

// WithGenerator returns attacker prototype bound to g, attackers without generator are returned as is
func WithGenerator(a adloader.Attack, g *workload.Generator) adloader.Attack {
	if ga, ok := a.(Generated); ok {
		return ga.WithGenerator(g)
	}
	return a
}

func campaignsURL(targetURL string) string {
	return strings.TrimRight(targetURL, "/") + CampaignsPath
}

// send performs request over runner transport, response body is drained and discarded,
// only 200 is a success
func send(ctx context.Context, r *adloader.Runner, label, method, url string, body []byte) adloader.DoResult {
	var (
		status   int
		bytesOut int64
		err      error
	)
	if r.Cfg.Transport == adloader.TransportFastHTTP {
		status, bytesOut, err = sendFastHTTP(ctx, r.FastHTTPClient, method, url, body)
	} else {
		status, bytesOut, err = sendHTTP(ctx, r.HTTPClient, method, url, body)
	}
	res := adloader.DoResult{
		RequestLabel: label,
		StatusCode:   status,
		BytesIn:      int64(len(body)),
		BytesOut:     bytesOut,
	}
	switch {
	case err != nil:
		res.Error = err.Error()
	case status != http.StatusOK:
		res.Error = fmt.Sprintf("unexpected status code: %d", status)
	}
	return res
}

func sendHTTP(ctx context.Context, c *http.Client, method, url string, body []byte) (int, int64, error) {
	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", jsonContentType)
	}
	res, err := c.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer res.Body.Close()
	n, err := io.Copy(io.Discard, res.Body)
	return res.StatusCode, n, err
}

func sendFastHTTP(ctx context.Context, c *adloader.FastHTTPClient, method, url string, body []byte) (int, int64, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)
	req.SetRequestURI(url)
	req.Header.SetMethod(method)
	if body != nil {
		req.Header.SetContentType(jsonContentType)
		req.SetBody(body)
	}
	if err := c.Do(ctx, req, resp); err != nil {
		return 0, 0, err
	}
	return resp.StatusCode(), int64(len(resp.Body())), nil
}
