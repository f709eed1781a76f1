// Package outbox delivers notification jobs written inside booking transactions.
package outbox

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"car-rental/internal/infra/messaging"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/config"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxRetryDelay = 5 * time.Minute

type JobStore interface {
	// ClaimDue moves up to limit jobs to processing: queued jobs with run_at <= now, and
	// processing jobs last claimed before staleBefore whose worker never settled them.
	ClaimDue(ctx context.Context, now, staleBefore time.Time, limit int) ([]shared.Job, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkRetry(ctx context.Context, id uuid.UUID, lastError string, runAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error
}

type Publisher interface {
	Publish(ctx context.Context, msg messaging.Message) error
}

type Dispatcher struct {
	jobs      JobStore
	publisher Publisher
	clock     clock.Clock
	cfg       config.OutboxConfig

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDispatcher(jobs JobStore, publisher Publisher, clk clock.Clock, cfg config.OutboxConfig) *Dispatcher {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 10
	}
	if cfg.ClaimLease <= 0 {
		cfg.ClaimLease = 5 * time.Minute
	}
	return &Dispatcher{jobs: jobs, publisher: publisher, clock: clk, cfg: cfg}
}

// Start polls until Stop is called. The start context only scopes startup.
func (d *Dispatcher) Start(_ context.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ticker := time.NewTicker(d.cfg.PollInterval)
		defer ticker.Stop()

		for {
			if _, err := d.RunOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("outbox dispatch failed", "error", err.Error())
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	slog.Info("outbox dispatcher started", "interval", d.cfg.PollInterval.String())
	return nil
}

func (d *Dispatcher) Stop(ctx context.Context) error {
	if d.cancel == nil {
		return nil
	}
	d.cancel()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("outbox dispatcher stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce dispatches one batch and returns how many jobs were published.
func (d *Dispatcher) RunOnce(ctx context.Context) (int, error) {
	now := d.clock.Now()
	jobs, err := d.jobs.ClaimDue(ctx, now, now.Add(-d.cfg.ClaimLease), d.cfg.BatchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, job := range jobs {
		if d.dispatch(ctx, job) {
			sent++
		}
	}
	return sent, nil
}

func (d *Dispatcher) dispatch(ctx context.Context, job shared.Job) bool {
	msg := messaging.Message{
		Topic: job.Topic,
		Key:   job.Key,
		Value: job.Payload,
		Headers: map[string]string{
			messaging.HeaderKind:  job.Kind,
			messaging.HeaderJobID: job.ID.String(),
		},
		Timestamp: job.CreatedAt,
	}

	pubErr := d.publisher.Publish(ctx, msg)
	// the outcome is recorded even when shutdown cancels ctx mid-batch
	markCtx := context.WithoutCancel(ctx)
	if pubErr == nil {
		if err := d.jobs.MarkSent(markCtx, job.ID); err != nil {
			slog.Error("failed to mark job sent", "job_id", job.ID, "error", err.Error())
		}
		return true
	}

	if job.Attempts >= d.cfg.MaxAttempts {
		slog.Error("outbox job failed permanently",
			"job_id", job.ID,
			"kind", job.Kind,
			"attempts", job.Attempts,
			"error", pubErr.Error())
		if err := d.jobs.MarkFailed(markCtx, job.ID, pubErr.Error()); err != nil {
			slog.Error("failed to mark job failed", "job_id", job.ID, "error", err.Error())
		}
		return false
	}

	retryAt := d.clock.Now().Add(d.retryDelay(job.Attempts))
	slog.Warn("outbox publish failed, will retry",
		"job_id", job.ID,
		"attempts", job.Attempts,
		"retry_at", retryAt,
		"error", pubErr.Error())
	if err := d.jobs.MarkRetry(markCtx, job.ID, pubErr.Error(), retryAt); err != nil {
		slog.Error("failed to reschedule job", "job_id", job.ID, "error", err.Error())
	}
	return false
}

// retryDelay doubles RetryBackoff per attempt, capped at maxRetryDelay.
func (d *Dispatcher) retryDelay(attempts int) time.Duration {
	delay := d.cfg.RetryBackoff
	if delay <= 0 {
		delay = time.Second
	}
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return delay
}
