package worker

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/journey-app/journey/internal/logger"
)

// Scheduler triggers jobs on fixed intervals and hands each run to the pool
type Scheduler struct {
	cron gocron.Scheduler
	pool *Pool
}

// NewScheduler creates a stopped scheduler feeding pool
func NewScheduler(pool *Pool) (*Scheduler, error) {
	cron, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &Scheduler{cron: cron, pool: pool}, nil
}

// Every registers job to run once at start and then every interval.
// A run is skipped when the pool queue is full.
func (s *Scheduler) Every(interval time.Duration, job Job) error {
	_, err := s.cron.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			s.pool.TryEnqueue(job)
		}),
		gocron.WithName(job.Name()),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("schedule %s: %w", job.Name(), err)
	}
	logger.Info(LogMsgJobScheduled, "job", job.Name(), "interval", interval.String())
	return nil
}

// Start starts the pool workers and the scheduler
func (s *Scheduler) Start() {
	s.pool.Start()
	s.cron.Start()
}

// Stop stops triggering new runs, then stops the pool
func (s *Scheduler) Stop() error {
	err := s.cron.Shutdown()
	s.pool.Stop()
	logger.Info(LogMsgSchedulerStopped)
	return err
}
