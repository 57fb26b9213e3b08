/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

// Package fakeapi is an in-process stand-in of the ad API for tests,
// it validates requests like the real API does and stores nothing but counters.
package fakeapi

import (
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	genders   = map[string]bool{"M": true, "F": true}
	countries = map[string]bool{"TW": true, "JP": true}
	platforms = map[string]bool{"android": true, "ios": true, "web": true}
)

type advertisement struct {
	Title      string      `json:"title" binding:"required"`
	StartAt    time.Time   `json:"startAt" binding:"required"`
	EndAt      time.Time   `json:"endAt" binding:"required"`
	Conditions []condition `json:"conditions"`
}

type condition struct {
	AgeStart *int     `json:"ageStart"`
	AgeEnd   *int     `json:"ageEnd"`
	Gender   []string `json:"gender"`
	Country  []string `json:"country"`
	Platform []string `json:"platform"`
}

type queryParameters struct {
	Age      int    `form:"age"`
	Gender   string `form:"gender"`
	Country  string `form:"country"`
	Platform string `form:"platform"`
	Offset   int    `form:"offset"`
	Limit    int    `form:"limit"`
}

// API fake ad API
type API struct {
	// Status forces every response to this status when not 0
	Status int
	// Sleep delays every response
	Sleep time.Duration

	created  int64
	queried  int64
	rejected int64

	mu     sync.Mutex
	titles map[string]int
	engine *gin.Engine
}

func New() *API {
	gin.SetMode(gin.ReleaseMode)
	a := &API{
		titles: make(map[string]int),
		engine: gin.New(),
	}
	a.engine.POST("/api/v1/ad", a.create)
	a.engine.GET("/api/v1/ad", a.query)
	return a
}

// Handler serves the API
func (a *API) Handler() http.Handler {
	return a.engine
}

func (a *API) Created() int64 {
	return atomic.LoadInt64(&a.created)
}

func (a *API) Queried() int64 {
	return atomic.LoadInt64(&a.queried)
}

func (a *API) Rejected() int64 {
	return atomic.LoadInt64(&a.rejected)
}

// Titles campaign title to amount of create requests with it
func (a *API) Titles() map[string]int {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[string]int, len(a.titles))
	for k, v := range a.titles {
		out[k] = v
	}
	return out
}

func (a *API) forced(c *gin.Context) bool {
	if a.Sleep > 0 {
		time.Sleep(a.Sleep)
	}
	if a.Status != 0 {
		c.JSON(a.Status, gin.H{"error": http.StatusText(a.Status)})
		return true
	}
	return false
}

func (a *API) reject(c *gin.Context, err error) {
	atomic.AddInt64(&a.rejected, 1)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (a *API) create(c *gin.Context) {
	if a.forced(c) {
		return
	}
	var body advertisement
	if err := c.ShouldBindJSON(&body); err != nil {
		a.reject(c, err)
		return
	}
	if body.StartAt.After(body.EndAt) {
		a.reject(c, errors.New("startAt must be <= endAt"))
		return
	}
	for _, cond := range body.Conditions {
		if err := validateCondition(cond); err != nil {
			a.reject(c, err)
			return
		}
	}
	atomic.AddInt64(&a.created, 1)
	a.mu.Lock()
	a.titles[body.Title]++
	a.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (a *API) query(c *gin.Context) {
	if a.forced(c) {
		return
	}
	var q queryParameters
	if err := c.ShouldBindQuery(&q); err != nil {
		a.reject(c, err)
		return
	}
	if err := validateQuery(q); err != nil {
		a.reject(c, err)
		return
	}
	atomic.AddInt64(&a.queried, 1)
	c.JSON(http.StatusOK, gin.H{"items": []interface{}{}})
}

func validateAge(age *int) bool {
	return age == nil || (*age >= 1 && *age <= 100)
}

func validateCondition(cond condition) error {
	if !validateAge(cond.AgeStart) {
		return errors.New("invalid ageStart value (must be 1 ~ 100)")
	}
	if !validateAge(cond.AgeEnd) {
		return errors.New("invalid ageEnd value (must be 1 ~ 100)")
	}
	if cond.AgeStart != nil && cond.AgeEnd != nil && *cond.AgeStart > *cond.AgeEnd {
		return errors.New("invalid ageEnd value (must be >= ageStart)")
	}
	for _, g := range cond.Gender {
		if !genders[g] {
			return errors.New("invalid gender value")
		}
	}
	for _, v := range cond.Country {
		if !countries[v] {
			return errors.New("invalid country value")
		}
	}
	for _, p := range cond.Platform {
		if !platforms[p] {
			return errors.New("invalid platform value")
		}
	}
	return nil
}

func validateQuery(q queryParameters) error {
	if q.Age < 0 || q.Age > 100 {
		return errors.New("invalid age value (must be 1 ~ 100)")
	}
	if q.Gender != "" && !genders[q.Gender] {
		return errors.New("invalid gender value")
	}
	if q.Country != "" && !countries[q.Country] {
		return errors.New("invalid country value")
	}
	if q.Platform != "" && !platforms[q.Platform] {
		return errors.New("invalid platform value")
	}
	if q.Offset < 0 {
		return errors.New("invalid offset value")
	}
	if q.Limit < 1 || q.Limit > 100 {
		return errors.New("invalid limit value (must be 1 ~ 100)")
	}
	return nil
}
