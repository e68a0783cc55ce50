package event

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/journey-app/journey/internal/logger"
)

type retryItem struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps a Bus with asynchronous retries and a dead-letter file.
// Callers never block on a failing subscriber.
type ResilientPublisher struct {
	bus        Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	queue    chan retryItem
	shutdown chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dl,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()

	return p, nil
}

// PublishWithRetry publishes once synchronously and queues the event for retry on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	p.enqueue(retryItem{event: event, attempts: 1, lastErr: err})
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) enqueue(item retryItem) {
	select {
	case <-p.shutdown:
		logger.Warn(LogMsgEventDroppedShutdown, "event_type", item.event.Type)
		p.writeDeadLetter(item)
		return
	default:
	}

	select {
	case p.queue <- item:
	default:
		logger.Error(LogMsgRetryQueueFull, "event_type", item.event.Type)
		p.writeDeadLetter(item)
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case item := <-p.queue:
			p.retry(item, true)
		case <-p.shutdown:
			p.drain()
			return
		}
	}
}

// retry keeps attempting one event until it succeeds or exhausts maxRetries
func (p *ResilientPublisher) retry(item retryItem, wait bool) {
	for item.attempts <= p.maxRetries {
		if wait {
			select {
			case <-time.After(CalculateRetryDelay(p.baseDelay, item.attempts)):
			case <-p.shutdown:
				wait = false
			}
		}

		err := p.bus.Publish(context.Background(), item.event)
		if err == nil {
			logger.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempt", item.attempts)
			return
		}

		item.attempts++
		item.lastErr = err
		logger.Warn(LogMsgEventRetryFailed, "event_type", item.event.Type, "attempt", item.attempts, "error", err)
	}

	logger.Error(LogMsgEventRetryExhausted, "event_type", item.event.Type, "attempts", item.attempts)
	p.writeDeadLetter(item)
}

// drain makes one final immediate attempt for everything still queued
func (p *ResilientPublisher) drain() {
	for {
		select {
		case item := <-p.queue:
			if err := p.bus.Publish(context.Background(), item.event); err != nil {
				item.lastErr = err
				p.writeDeadLetter(item)
			}
		default:
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(item retryItem) {
	lastErr := item.lastErr
	if lastErr == nil {
		lastErr = errors.New("unknown publish failure")
	}
	if err := p.deadLetter.Write(item.event, item.attempts, lastErr); err != nil {
		logger.Error(LogMsgDeadLetterFailed, "event_type", item.event.Type, "error", err)
	}
}

// Shutdown stops the retry worker, drains the queue and closes the dead-letter file
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.once.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return p.deadLetter.Close()
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
