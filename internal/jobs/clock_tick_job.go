package jobs

import (
	"context"
	"log/slog"

	"seaport/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

type advancer interface {
	Advance(delta int64) kernel.Tick
}

// ClockTickJob advances the logical clock by a fixed number of ticks on
// every run.
type ClockTickJob struct {
	clock  advancer
	ticks  int64
	spec   string
	cron   *cron.Cron
	logger *slog.Logger
}

func NewClockTickJob(clock advancer, ticks int64, spec string, logger *slog.Logger) *ClockTickJob {
	return &ClockTickJob{
		clock:  clock,
		ticks:  ticks,
		spec:   spec,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "clock_tick_job"),
	}
}

func (j *ClockTickJob) Name() string {
	return "clock tick job"
}

func (j *ClockTickJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		now := j.clock.Advance(j.ticks)
		j.logger.Debug("Clock advanced", "now", int64(now))
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Clock tick job started", "spec", j.spec, "ticks", j.ticks)
	return nil
}

func (j *ClockTickJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Clock tick job stopped")
}
