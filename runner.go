/*
 * // Copyright 2020 Insolar Network Ltd.
 * // All rights reserved.
 * // This material is licensed under the Insolar License version 1.0,
 * // available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.
 */

package adloader

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/ratelimit"
)

const (
	DefaultResultsQueueCapacity = 100_000
	// TickInterval results are aggregated and logged every tick
	TickInterval = time.Second
)

var errRunnerUsed = errors.New("runner can be run only once")

// Runner provides test context for attacking target with a schedule
type Runner struct {
	// Name of a runner
	Name string
	// RunID uniq id of a run, added to every log entry
	RunID string
	// Cfg runner config
	Cfg *RunnerConfig
	// prototype from which all attackers cloned
	attackerPrototype Attack
	// ratelimiter for keeping constant rps
	rl ratelimit.Limiter
	// TimeoutCtx test timeout ctx
	TimeoutCtx context.Context
	// CancelFunc stops scheduling
	CancelFunc context.CancelFunc
	// parent of every Do ctx, outlives TimeoutCtx so requests in flight can finish
	requestCtx context.Context
	// next schedule chan to signal to attack
	next chan AttackToken
	// pre-allocated attackers, set up in NewRunner
	attackers   []Attack
	attackersWg sync.WaitGroup
	// amount of started attackers, only scheduler changes it after start
	activeAttackers int
	dropped         int64
	started         time.Time
	ran             int32

	results chan AttackResult
	// collector owned state, read after collector is done
	total       *Metrics
	maxTickRate float64
	uniqErrors  map[string]int

	HTTPClient     *http.Client
	FastHTTPClient *FastHTTPClient
	PromReporter   *PromReporter
	L              *Logger
}

// NewRunner creates new runner and sets up pre-allocated attackers cloned from a,
// logger is created from config when l is nil
func NewRunner(cfg *RunnerConfig, a Attack, l *Logger) (*Runner, error) {
	cfg.DefaultCfgValues()
	if list := cfg.Validate(); len(list) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRunnerConfig, strings.Join(list, ", "))
	}
	if l == nil {
		var err error
		if l, err = NewLogger(cfg); err != nil {
			return nil, err
		}
	}
	runID := uuid.New().String()
	r := &Runner{
		Name:              cfg.Name,
		RunID:             runID,
		Cfg:               cfg,
		attackerPrototype: a,
		rl:                ratelimit.NewUnlimited(),
		next:              make(chan AttackToken),
		attackers:         make([]Attack, 0, cfg.Attackers),
		results:           make(chan AttackResult, DefaultResultsQueueCapacity),
		total:             NewMetrics(),
		uniqErrors:        make(map[string]int),
		PromReporter:      NewPromReporter(cfg.Name),
		L:                 l.With("runner", cfg.Name, "run_id", runID),
	}
	if cfg.Rate > 0 {
		r.rl = ratelimit.New(cfg.Rate)
	}
	switch cfg.Transport {
	case TransportFastHTTP:
		r.FastHTTPClient = NewLoggingFastHTTPClient(cfg.DumpTransport, r.L)
	default:
		r.HTTPClient = NewLoggingHTTPClient(cfg.DumpTransport, cfg.attackerTimeout(), r.L)
	}
	for i := 0; i < cfg.Attackers; i++ {
		atk := r.attackerPrototype.Clone(r)
		if err := atk.Setup(*r.Cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", errAttackerSetup, err)
		}
		r.attackers = append(r.attackers, atk)
	}
	return r, nil
}

// Run runs the test, blocks until all iterations are done or duration is over
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	if !atomic.CompareAndSwapInt32(&r.ran, 0, 1) {
		return nil, errRunnerUsed
	}
	if r.Cfg.WaitBeforeSec > 0 {
		r.L.Infof("waiting for %d seconds before start", r.Cfg.WaitBeforeSec)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(r.Cfg.WaitBeforeSec) * time.Second):
		}
	}
	r.L.Infof("runner started, executor: %s, target: %s", r.Cfg.Executor, r.Cfg.TargetUrl)
	r.requestCtx = ctx
	r.TimeoutCtx, r.CancelFunc = context.WithTimeout(ctx, r.Cfg.duration())
	defer r.CancelFunc()
	if r.Cfg.Prometheus != nil && r.Cfg.Prometheus.Enable {
		ds := startDebugServer(r.Cfg.Prometheus.Port, r.PromReporter.Registry, r.L)
		defer ds.shutdown()
	}
	stopSignals := r.handleShutdownSignal()
	defer stopSignals()

	r.started = time.Now()
	collected := r.collectResults()
	for _, atk := range r.attackers {
		r.startAttacker(atk)
	}
	r.schedule()
	r.attackersWg.Wait()
	close(r.results)
	<-collected

	s := &Summary{
		Total:             r.total,
		MaxTickRate:       r.maxTickRate,
		DroppedIterations: atomic.LoadInt64(&r.dropped),
		PeakAttackers:     r.activeAttackers,
		UniqErrors:        r.uniqErrors,
	}
	r.L.Infof(
		"runner exited, requests: %d, rate: %.2f, max tick rate: %.2f, %% success: %.2f, p50: %v, p95: %v, p99: %v, dropped: %d, attackers: %d",
		s.Total.Requests,
		s.Total.Rate,
		s.MaxTickRate,
		s.Total.successLogEntry(),
		s.Total.Latencies.P50,
		s.Total.Latencies.P95,
		s.Total.Latencies.P99,
		s.DroppedIterations,
		s.PeakAttackers,
	)
	return s, nil
}

func (r *Runner) startAttacker(a Attack) {
	num := r.activeAttackers
	r.activeAttackers++
	r.attackersWg.Add(1)
	r.PromReporter.reportAttackers(r.activeAttackers)
	go attack(a, r, num)
}

func (r *Runner) spawnAttacker() error {
	a := r.attackerPrototype.Clone(r)
	if err := a.Setup(*r.Cfg); err != nil {
		return fmt.Errorf("%w: %w", errAttackerSetup, err)
	}
	r.startAttacker(a)
	return nil
}

func (r *Runner) currentTick() int {
	return int(time.Since(r.started)/TickInterval) + 1
}

// schedule fires tokens until iterations are over or test is stopped
func (r *Runner) schedule() {
	defer close(r.next)
	fired := 0
	for iteration := 0; ; iteration++ {
		if r.Cfg.Executor == SharedIterations && iteration >= r.Cfg.Iterations {
			break
		}
		r.rl.Take()
		if r.TimeoutCtx.Err() != nil {
			break
		}
		if !r.dispatch(AttackToken{Iteration: iteration, Tick: r.currentTick()}) {
			break
		}
		fired++
	}
	r.L.Infof("total iterations fired: %d, dropped: %d", fired, atomic.LoadInt64(&r.dropped))
}

// dispatch hands token to an idle attacker, returns false when test is stopped
func (r *Runner) dispatch(token AttackToken) bool {
	if r.Cfg.Executor == ConstantArrivalRate {
		select {
		case r.next <- token:
			return true
		case <-r.TimeoutCtx.Done():
			return false
		default:
		}
		if r.activeAttackers >= r.Cfg.MaxAttackers {
			r.drop(token, "all attackers are busy")
			return true
		}
		if err := r.spawnAttacker(); err != nil {
			r.drop(token, err.Error())
			return true
		}
	}
	select {
	case r.next <- token:
		return true
	case <-r.TimeoutCtx.Done():
		return false
	}
}

func (r *Runner) drop(token AttackToken, reason string) {
	atomic.AddInt64(&r.dropped, 1)
	r.PromReporter.reportDropped()
	r.L.Debugf("iteration dropped: %s, %s", token, reason)
}

// collectResults aggregates attackers results, logs every tick
func (r *Runner) collectResults() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(TickInterval)
		defer ticker.Stop()
		tick := 1
		tickMetrics := NewMetrics()
		for {
			select {
			case res, ok := <-r.results:
				if !ok {
					r.reportTick(tick, tickMetrics)
					r.total.update()
					r.printErrors()
					return
				}
				r.L.Debugf("received result: %s", res)
				r.total.add(res)
				tickMetrics.add(res)
				r.PromReporter.reportResult(res)
				if res.DoResult.Error != "" {
					r.uniqErrors[res.DoResult.Error]++
					r.L.Debugf("attacker error: %s", res.DoResult.Error)
				}
			case <-ticker.C:
				r.reportTick(tick, tickMetrics)
				tick++
				tickMetrics = NewMetrics()
			}
		}
	}()
	return done
}

// reportTick logs metrics of one tick, empty ticks are skipped
func (r *Runner) reportTick(tick int, m *Metrics) {
	if m.Requests == 0 {
		return
	}
	m.update()
	m.Rate = float64(m.Requests) / TickInterval.Seconds()
	if m.Rate > r.maxTickRate {
		r.maxTickRate = m.Rate
	}
	r.L.Infof(
		"tick: %d, rate [%.2f -> %d], perc: 50 [%v] 95 [%v] 99 [%v], # requests [%d], %% success [%.2f]",
		tick,
		m.Rate,
		r.Cfg.Rate,
		m.Latencies.P50,
		m.Latencies.P95,
		m.Latencies.P99,
		m.Requests,
		m.successLogEntry(),
	)
	r.PromReporter.reportTick(m)
}

// printErrors print uniq errors
func (r *Runner) printErrors() {
	if len(r.uniqErrors) == 0 {
		return
	}
	r.L.Infof("Uniq errors:")
	for e, count := range r.uniqErrors {
		r.L.Infof("error: %s, count: %d", e, count)
	}
}
