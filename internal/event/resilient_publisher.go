package event

import (
	"context"
	"sync"
	"time"

	"github.com/kadamczak/GameBackend_Go/internal/logger"
	"github.com/kadamczak/GameBackend_Go/internal/metrics"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	DeadLetterPath string
}

// DefaultResilientConfig returns the standard retry policy
func DefaultResilientConfig(deadLetterPath string) ResilientConfig {
	return ResilientConfig{
		MaxRetries:     RetryMaxAttempts,
		RetryDelay:     RetryInitialDelaySeconds * time.Second,
		DeadLetterPath: deadLetterPath,
	}
}

// ResilientPublisher wraps an event Bus with retry logic and a dead-letter
// file. Callers never block on delivery: the first failed attempt hands the
// event to a background retry loop, and exhausted events are appended to the
// dead-letter file for manual replay.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
	wg     sync.WaitGroup
	mu     sync.Mutex // protects dead-letter writes
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	return &ResilientPublisher{
		inner:  inner,
		config: config,
	}
}

// PublishWithRetry attempts to publish an event, falling back to background
// retries. The caller's context only covers the first attempt; retries run
// detached because the originating request may already be finished.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	p.wg.Add(1)
	go p.retryLoop(event, err)
}

func (p *ResilientPublisher) retryLoop(event Event, firstErr error) {
	defer p.wg.Done()

	// Detached context for background work
	ctx := context.Background()
	log := logger.FromContext(ctx)
	lastErr := firstErr

	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		time.Sleep(CalculateRetryDelay(p.config.RetryDelay, attempt))

		if err := p.inner.Publish(ctx, event); err == nil {
			metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()
			log.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", attempt)
			return
		} else {
			lastErr = err
			log.Warn(LogMsgEventRetryFailed, "event_type", event.Type, "attempt", attempt, "error", err)
		}
	}

	log.Error(LogMsgEventRetryExhausted, "event_type", event.Type)
	metrics.EventHandlerErrors.WithLabelValues(string(event.Type)).Inc()
	p.writeToDeadLetter(event, lastErr)
}

func (p *ResilientPublisher) writeToDeadLetter(event Event, lastErr error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	dlw, err := NewDeadLetterWriter(p.config.DeadLetterPath)
	if err != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeadLetterWriteFailed,
			"error", err, "path", p.config.DeadLetterPath)
		return
	}
	defer dlw.Close()

	if err := dlw.Write(event, p.config.MaxRetries, lastErr); err != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}

// Shutdown waits for in-flight retry loops to finish or the context to expire
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}
