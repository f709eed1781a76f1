package memstore

import (
	"context"
	"sort"
	"time"

	"car-rental/internal/infra"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

// Jobs serves the outbox dispatcher from committed jobs.
type Jobs struct {
	store *Store
}

func (s *Store) Jobs() *Jobs {
	return &Jobs{store: s}
}

func (j *Jobs) ClaimDue(_ context.Context, now, staleBefore time.Time, limit int) ([]shared.Job, error) {
	j.store.mu.Lock()
	defer j.store.mu.Unlock()

	due := make([]*shared.Job, 0)
	for _, job := range j.store.jobs {
		switch {
		case job.Status == shared.JobStatusQueued && !job.RunAt.After(now),
			job.Status == shared.JobStatusProcessing && job.UpdatedAt.Before(staleBefore):
			due = append(due, job)
		}
	}
	sort.SliceStable(due, func(a, b int) bool { return due[a].RunAt.Before(due[b].RunAt) })
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}

	out := make([]shared.Job, len(due))
	for i, job := range due {
		job.Status = shared.JobStatusProcessing
		job.Attempts++
		job.UpdatedAt = now
		out[i] = *job
	}
	return out, nil
}

func (j *Jobs) MarkSent(_ context.Context, id uuid.UUID) error {
	return j.update(id, func(job *shared.Job) {
		job.Status = shared.JobStatusSent
		job.LastError = nil
	})
}

func (j *Jobs) MarkRetry(_ context.Context, id uuid.UUID, lastError string, runAt time.Time) error {
	return j.update(id, func(job *shared.Job) {
		job.Status = shared.JobStatusQueued
		job.LastError = &lastError
		job.RunAt = runAt
	})
}

func (j *Jobs) MarkFailed(_ context.Context, id uuid.UUID, lastError string) error {
	return j.update(id, func(job *shared.Job) {
		job.Status = shared.JobStatusFailed
		job.LastError = &lastError
	})
}

// Snapshot returns copies of every committed job.
func (j *Jobs) Snapshot() []shared.Job {
	j.store.mu.RLock()
	defer j.store.mu.RUnlock()

	out := make([]shared.Job, len(j.store.jobs))
	for i, job := range j.store.jobs {
		out[i] = *job
	}
	return out
}

func (j *Jobs) update(id uuid.UUID, apply func(*shared.Job)) error {
	j.store.mu.Lock()
	defer j.store.mu.Unlock()

	for _, job := range j.store.jobs {
		if job.ID == id {
			apply(job)
			return nil
		}
	}
	return infra.NewRepoErr(infra.KindNotFound, "notification job not found")
}
