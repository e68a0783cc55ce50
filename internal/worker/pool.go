package worker

import (
	"context"
	"sync"
	"time"

	"github.com/journey-app/journey/internal/logger"
	"github.com/journey-app/journey/internal/metrics"
)

// Job represents a task to be executed by a worker
type Job interface {
	Name() string
	Process(ctx context.Context) error
}

// Pool represents a worker pool
type Pool struct {
	workers  int
	timeout  time.Duration
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewPool creates a new worker pool. Each job run gets its own timeout.
func NewPool(workers, queueSize int, timeout time.Duration) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if timeout <= 0 {
		timeout = DefaultJobTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:  workers,
		timeout:  timeout,
		jobQueue: make(chan Job, queueSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Pool) run(job Job) {
	ctx, cancel := context.WithTimeout(p.ctx, p.timeout)
	defer cancel()
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())

	if err := job.Process(ctx); err != nil {
		metrics.JobRunsTotal.WithLabelValues(job.Name(), metrics.OutcomeError).Inc()
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "job", job.Name(), "error", err)
		return
	}
	metrics.JobRunsTotal.WithLabelValues(job.Name(), metrics.OutcomeSuccess).Inc()
}

// TryEnqueue adds a job to the queue without blocking.
// It returns false if the queue is full or the pool is stopping.
func (p *Pool) TryEnqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		metrics.JobsDroppedTotal.WithLabelValues(job.Name()).Inc()
		logger.Warn(LogMsgWorkerJobDropped, "job", job.Name())
		return false
	}
}

// Stop cancels in-flight jobs and waits for the workers to exit. Queued jobs are discarded.
func (p *Pool) Stop() {
	p.cancel()
	p.wg.Wait()
}
