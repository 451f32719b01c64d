package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/binderapp/binder/internal/logger"
)

// retryEntry tracks an event awaiting republication
type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps a Bus with retry and dead-letter handling.
// Failed publishes are queued and retried with exponential backoff; events
// that exhaust their retries (or overflow the queue) go to a dead-letter file.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	shutdown   chan struct{}
	once       sync.Once
	wg         sync.WaitGroup
	deadLetter *DeadLetterWriter
}

// NewResilientPublisher creates a ResilientPublisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dead-letter file: %w", err)
	}

	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		shutdown:   make(chan struct{}),
		deadLetter: dl,
	}

	rp.wg.Add(1)
	go rp.retryWorker()

	return rp, nil
}

// PublishWithRetry publishes an event, queuing it for retry on failure.
// It never blocks on a failing bus beyond the initial attempt.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	log := logger.FromContext(ctx)
	log.Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)

	p.enqueue(ctx, retryEntry{event: event, attempts: 1, lastErr: err})
}

// Publish implements Bus so services can depend on the resilient path transparently
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe implements Bus by delegating to the wrapped bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

// enqueue adds an entry to the retry queue, dead-lettering it when the queue is full
func (p *ResilientPublisher) enqueue(ctx context.Context, entry retryEntry) {
	select {
	case p.retryQueue <- entry:
	default:
		log := logger.FromContext(ctx)
		log.Warn(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		if err := p.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
			log.Error(LogMsgDeadLetterWriteFailed, "error", err)
		}
	}
}

// retryWorker processes the retry queue until shutdown
func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	ctx := context.Background()
	log := logger.FromContext(ctx)

	for {
		select {
		case <-p.shutdown:
			p.drain(ctx)
			return
		case entry := <-p.retryQueue:
			delay := CalculateRetryDelay(p.retryDelay, entry.attempts)
			select {
			case <-time.After(delay):
			case <-p.shutdown:
				// Skip the remaining backoff and attempt once before draining.
			}

			err := p.bus.Publish(ctx, entry.event)
			if err == nil {
				log.Debug(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempts", entry.attempts)
				continue
			}

			entry.attempts++
			entry.lastErr = err

			if entry.attempts > p.maxRetries {
				log.Warn(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempts)
				if werr := p.deadLetter.Write(entry.event, entry.attempts, err); werr != nil {
					log.Error(LogMsgDeadLetterWriteFailed, "error", werr)
				}
				continue
			}

			log.Debug(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempts, "error", err)
			p.enqueue(ctx, entry)
		}
	}
}

// drain gives every queued entry one final attempt, dead-lettering failures
func (p *ResilientPublisher) drain(ctx context.Context) {
	log := logger.FromContext(ctx)

	for {
		select {
		case entry := <-p.retryQueue:
			err := p.bus.Publish(ctx, entry.event)
			if err == nil {
				continue
			}
			entry.attempts++
			log.Warn(LogMsgEventDroppedShutdown, "event_type", entry.event.Type, "attempts", entry.attempts)
			if werr := p.deadLetter.Write(entry.event, entry.attempts, err); werr != nil {
				log.Error(LogMsgDeadLetterWriteFailedS, "error", werr)
			}
		default:
			log.Debug(LogMsgQueueDrainedShutdown)
			return
		}
	}
}

// Shutdown stops the retry worker, drains the queue and closes the dead-letter file.
// It returns ctx.Err() if the worker does not finish in time.
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
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
