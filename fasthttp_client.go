/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package adloader

import (
	"context"
	"time"

	"github.com/valyala/fasthttp"
)

type FastHTTPClient struct {
	dump bool
	l    *Logger
	fasthttp.Client
}

// NewLoggingFastHTTPClient creates new client with debug http
func NewLoggingFastHTTPClient(debug bool, l *Logger) *FastHTTPClient {
	return &FastHTTPClient{
		dump: debug,
		l:    l,
		Client: fasthttp.Client{
			MaxConnsPerHost:           maxConnsPerHost,
			MaxIdleConnDuration:       90 * time.Second,
			MaxIdemponentCallAttempts: 1,
		},
	}
}

// Do performs request, ctx deadline is used as request deadline
func (m *FastHTTPClient) Do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if m.dump {
		m.l.Debugf(RequestHeader, req.String())
	}
	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = m.Client.DoDeadline(req, resp, deadline)
	} else {
		err = m.Client.Do(req, resp)
	}
	if err != nil {
		return err
	}
	if m.dump {
		m.l.Debugf(ResponseHeader, resp.String())
	}
	return nil
}
