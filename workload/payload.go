/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package workload

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout ISO-8601 with milliseconds, UTC is written as "Z"
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp marshals to TimestampLayout keeping the original location.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, len(TimestampLayout)+2)
	b = append(b, '"')
	b = t.AppendFormat(b, TimestampLayout)
	b = append(b, '"')
	return b, nil
}

func (t Timestamp) String() string {
	return t.Format(TimestampLayout)
}

// CreateCampaignPayload body of POST /api/v1/ad
type CreateCampaignPayload struct {
	Title      string               `json:"title"`
	StartAt    Timestamp            `json:"startAt"`
	EndAt      Timestamp            `json:"endAt"`
	Conditions []TargetingCondition `json:"conditions"`
}

// TargetingCondition describes users a campaign may be served to.
type TargetingCondition struct {
	AgeStart int      `json:"ageStart"`
	AgeEnd   int      `json:"ageEnd"`
	Gender   []string `json:"gender"`
	Country  []string `json:"country"`
	Platform []string `json:"platform"`
}

// QueryParams query of GET /api/v1/ad
type QueryParams struct {
	Gender   string
	Country  string
	Platform string
	Offset   int
	Limit    int
}

// Encode writes query string in a stable gender, country, platform, offset, limit order.
func (q QueryParams) Encode() string {
	var sb strings.Builder
	sb.WriteString("gender=")
	sb.WriteString(url.QueryEscape(q.Gender))
	sb.WriteString("&country=")
	sb.WriteString(url.QueryEscape(q.Country))
	sb.WriteString("&platform=")
	sb.WriteString(url.QueryEscape(q.Platform))
	sb.WriteString("&offset=")
	sb.WriteString(strconv.Itoa(q.Offset))
	sb.WriteString("&limit=")
	sb.WriteString(strconv.Itoa(q.Limit))
	return sb.String()
}
