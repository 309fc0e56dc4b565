// Package scheduler triggers the publisher on a fixed cron cadence.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/discountcoupon/coupon-channel-bot/internal/domain/contract"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
}

// New schedules one publishing job at the given cron spec, evaluated in the
// named timezone. A tick that arrives while the previous publish is still
// running is skipped, never run concurrently.
func New(spec, tzName string, publisher contract.Publisher, log zerolog.Logger) (*Scheduler, error) {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", tzName, err)
	}

	logger := log.With().Str("component", "scheduler").Logger()

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger{log: logger})),
	)

	if _, err := c.AddFunc(spec, func() {
		publisher.Publish(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("failed to schedule publishing job %q: %w", spec, err)
	}

	return &Scheduler{cron: c, log: logger}, nil
}

func (s *Scheduler) Start() {
	s.log.Info().Msg("scheduler starting")
	s.cron.Start()
}

// Stop halts the cron trigger and waits for an in-flight publish to finish.
func (s *Scheduler) Stop() {
	s.log.Info().Msg("scheduler stopping")
	<-s.cron.Stop().Done()
}

// cronLogger adapts zerolog to the cron.Logger interface so skipped
// overlapping ticks show up in the main log stream.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
