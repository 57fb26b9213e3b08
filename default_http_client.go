/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package adloader

import (
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	RequestHeader      = "========== REQUEST ==========\n%s\n"
	RequestHeaderBody  = "========== REQUEST ==========\n%s\n%s\n"
	ResponseHeaderBody = "========== RESPONSE ==========\n%s\n%s\n"
	ResponseHeader     = "========== RESPONSE ==========\n%s\n"
	HTTPBodyDelimiter  = "\r\n\r\n"

	maxConnsPerHost = 65535
)

// NewLoggingHTTPClient creates new client, dumps requests and responses when debug is set
func NewLoggingHTTPClient(debug bool, transportTimeout time.Duration, l *Logger) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxConnsPerHost = maxConnsPerHost
	transport.MaxIdleConns = maxConnsPerHost
	transport.MaxIdleConnsPerHost = maxConnsPerHost
	transport.DisableCompression = true
	transport.ResponseHeaderTimeout = transportTimeout

	var rt http.RoundTripper = transport
	if debug {
		rt = &DumpTransport{r: transport, l: l}
	}
	return &http.Client{
		Transport: rt,
		Timeout:   transportTimeout,
	}
}

// DumpTransport log http request/responses, pprint bodies
type DumpTransport struct {
	r http.RoundTripper
	l *Logger
}

func (d *DumpTransport) RoundTrip(h *http.Request) (*http.Response, error) {
	dump, _ := httputil.DumpRequestOut(h, true)
	if bodyIsJson(h.Header) {
		req, pprintBody := prettyPrintJsonBody(dump)
		d.l.Debugf(RequestHeaderBody, req, pprintBody)
	} else {
		d.l.Debugf(RequestHeader, dump)
	}
	resp, err := d.r.RoundTrip(h)
	if err != nil {
		return nil, err
	}
	// DumpResponse restores the body, so caller still can read it
	dump, _ = httputil.DumpResponse(resp, true)
	if bodyIsJson(resp.Header) {
		respString, pprintBody := prettyPrintJsonBody(dump)
		d.l.Debugf(ResponseHeaderBody, respString, pprintBody)
		return resp, nil
	}
	d.l.Debugf(ResponseHeader, dump)
	return resp, nil
}

// prettyPrintJsonBody returns http format head and pretty printed json body,
// body is returned as is if it's not a valid json
func prettyPrintJsonBody(b []byte) (string, string) {
	sp := strings.SplitN(string(b), HTTPBodyDelimiter, 2)
	if len(sp) != 2 {
		return sp[0], ""
	}
	var body interface{}
	if err := jsoniter.Unmarshal([]byte(sp[1]), &body); err != nil {
		return sp[0], sp[1]
	}
	pprintBody, err := jsoniter.MarshalIndent(body, "", "    ")
	if err != nil {
		return sp[0], sp[1]
	}
	return sp[0], string(pprintBody)
}

func bodyIsJson(h http.Header) bool {
	return strings.Contains(h.Get("content-type"), "application/json")
}
