// Package sim runs the background simulation: independent periodic jobs that
// drive a domain's mutator methods so every instrument keeps receiving
// plausible samples without inbound traffic.
package sim

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"analytics-demo/internal/metrics"
)

// Job is one periodic simulation job. Each firing draws a call count in
// [MinCalls, MaxCalls) and invokes Run that many times back to back.
type Job struct {
	Name     string
	Interval time.Duration
	MinCalls int
	MaxCalls int
	Run      func()
}

// Activity is a named mutator invocation used by the comprehensive sweep.
type Activity struct {
	Name string
	Run  func()
}

// WeightedActivity is an Activity with a selection weight for burst mixing.
type WeightedActivity struct {
	Name   string
	Weight float64
	Run    func()
}

// Profile declares a domain's full simulation schedule: the independent
// periodic jobs, the comprehensive sweep that touches every activity once
// per interval, and the burst job that fires a weighted mix of activities
// in rapid succession.
type Profile struct {
	Domain        string
	Jobs          []Job
	Sweep         []Activity
	SweepInterval time.Duration
	Burst         []WeightedActivity
	BurstInterval time.Duration
	BurstMin      int
	BurstMax      int
	BurstPauseMin time.Duration
	BurstPauseMax time.Duration
}

// CallRange bounds the per-firing repetition draw of a job.
type CallRange struct {
	Min int
	Max int
}

// ApplyCallOverrides replaces job repetition ranges by name. Invalid ranges
// and unknown names are ignored.
func (p *Profile) ApplyCallOverrides(overrides map[string]CallRange) {
	for name, r := range overrides {
		if r.Min < 0 || r.Max < r.Min {
			continue
		}
		for i := range p.Jobs {
			if p.Jobs[i].Name == name {
				p.Jobs[i].MinCalls = r.Min
				p.Jobs[i].MaxCalls = r.Max
			}
		}
	}
}

// ApplyIntervalOverrides replaces job intervals by name. The reserved names
// "sweep" and "burst" override those schedules. Unknown names are ignored.
func (p *Profile) ApplyIntervalOverrides(overrides map[string]time.Duration) {
	for name, interval := range overrides {
		if interval <= 0 {
			continue
		}
		switch name {
		case "sweep":
			p.SweepInterval = interval
		case "burst":
			p.BurstInterval = interval
		default:
			for i := range p.Jobs {
				if p.Jobs[i].Name == name {
					p.Jobs[i].Interval = interval
				}
			}
		}
	}
}

// Scheduler owns the cron entries for one domain profile. Jobs are
// independent cron entries with no shared lock; a failure inside one firing
// is recovered and logged and never stops future firings.
//
// Construction is config-gated by the caller: a disabled simulation means no
// Scheduler is built at all, not a Scheduler with skipped jobs.
type Scheduler struct {
	cron    *cron.Cron
	logger  *slog.Logger
	profile Profile
	stop    chan struct{}
}

// New builds a scheduler for the profile. Nothing fires until Start.
func New(logger *slog.Logger, profile Profile) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(),
		logger:  logger.With(slog.String("domain", profile.Domain)),
		profile: profile,
		stop:    make(chan struct{}),
	}

	for _, job := range profile.Jobs {
		job := job
		if _, err := s.cron.AddFunc(every(job.Interval), func() { s.fire(job) }); err != nil {
			return nil, fmt.Errorf("schedule job %q: %w", job.Name, err)
		}
	}

	if len(profile.Sweep) > 0 {
		interval := profile.SweepInterval
		if interval <= 0 {
			interval = time.Minute
		}
		if _, err := s.cron.AddFunc(every(interval), s.sweep); err != nil {
			return nil, fmt.Errorf("schedule sweep: %w", err)
		}
	}

	if len(profile.Burst) > 0 && profile.BurstInterval > 0 {
		if _, err := s.cron.AddFunc(every(profile.BurstInterval), s.burst); err != nil {
			return nil, fmt.Errorf("schedule burst: %w", err)
		}
	}

	return s, nil
}

func every(d time.Duration) string {
	return fmt.Sprintf("@every %s", d)
}

// Start begins firing jobs on their schedules.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("simulation scheduler started", slog.Int("entries", len(s.cron.Entries())))
}

// Stop halts scheduling, aborts any in-flight burst pause, and waits for
// running firings to finish.
func (s *Scheduler) Stop() {
	close(s.stop)
	<-s.cron.Stop().Done()
	s.logger.Info("simulation scheduler stopped")
}

// Entries reports how many cron entries are registered.
func (s *Scheduler) Entries() int { return len(s.cron.Entries()) }

// fire runs one scheduled firing of a job. The call count is drawn per
// firing; a panic aborts only this firing.
func (s *Scheduler) fire(job Job) {
	defer s.recoverFiring(job.Name)

	calls := 1
	if job.MaxCalls > job.MinCalls {
		calls = metrics.IntBetween(job.MinCalls, job.MaxCalls)
	}
	for i := 0; i < calls; i++ {
		job.Run()
	}
	s.logger.Debug("simulated activity", slog.String("job", job.Name), slog.Int("calls", calls))
}

// sweep invokes every activity exactly once, guaranteeing each metric series
// at least one sample per interval regardless of the other jobs' draws.
func (s *Scheduler) sweep() {
	defer s.recoverFiring("sweep")

	s.logger.Info("running comprehensive simulation cycle")
	for _, a := range s.profile.Sweep {
		a.Run()
	}
	s.logger.Info("comprehensive simulation cycle completed")
}

// burst fires a rapid randomly-ordered mix of activities to simulate a
// traffic spike, pausing a short random slice between repetitions. Stop
// aborts only the current burst.
func (s *Scheduler) burst() {
	defer s.recoverFiring("burst")

	weights := make([]float64, len(s.profile.Burst))
	for i, a := range s.profile.Burst {
		weights[i] = a.Weight
	}

	size := metrics.IntBetween(s.profile.BurstMin, s.profile.BurstMax)
	s.logger.Info("simulating burst activity", slog.Int("size", size))

	for i := 0; i < size; i++ {
		s.profile.Burst[metrics.WeightedPick(weights)].Run()

		select {
		case <-s.stop:
			s.logger.Warn("burst activity interrupted", slog.Int("completed", i+1))
			return
		case <-time.After(metrics.DurationBetween(s.profile.BurstPauseMin, s.profile.BurstPauseMax)):
		}
	}
	s.logger.Info("burst activity completed", slog.Int("activities", size))
}

func (s *Scheduler) recoverFiring(name string) {
	if r := recover(); r != nil {
		s.logger.Error("simulation firing failed",
			slog.String("job", name),
			slog.Any("panic", r))
	}
}
