package readstore

import (
	"context"
	"time"

	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/pkg/pgconv"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationJobQueries interface {
	ClaimDueNotificationJobs(ctx context.Context, db query.DBTX, arg query.ClaimDueNotificationJobsParams) ([]query.NotificationJobs, error)
	UpdateNotificationJobStatus(ctx context.Context, db query.DBTX, arg query.UpdateNotificationJobStatusParams) error
}

// JobStore hands outbox rows to the dispatcher. Each call is its own statement.
type JobStore struct {
	queries NotificationJobQueries
	db      query.DBTX
}

func NewJobStore(queries NotificationJobQueries, db query.DBTX) *JobStore {
	return &JobStore{
		queries: queries,
		db:      db,
	}
}

func (s *JobStore) ClaimDue(ctx context.Context, now, staleBefore time.Time, limit int) ([]shared.Job, error) {
	rows, err := s.queries.ClaimDueNotificationJobs(ctx, s.db, query.ClaimDueNotificationJobsParams{
		Now:         pgconv.TimeToPgtype(now),
		Limit:       clampOffset(limit),
		StaleBefore: pgconv.TimeToPgtype(staleBefore),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.Job, len(rows))
	for i, row := range rows {
		jobs[i] = rowToJob(row)
	}
	return jobs, nil
}

func (s *JobStore) MarkSent(ctx context.Context, id uuid.UUID) error {
	return s.update(ctx, id, shared.JobStatusSent, nil, nil)
}

func (s *JobStore) MarkRetry(ctx context.Context, id uuid.UUID, lastError string, runAt time.Time) error {
	return s.update(ctx, id, shared.JobStatusQueued, &lastError, &runAt)
}

func (s *JobStore) MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error {
	return s.update(ctx, id, shared.JobStatusFailed, &lastError, nil)
}

func (s *JobStore) update(ctx context.Context, id uuid.UUID, status string, lastError *string, runAt *time.Time) error {
	params := query.UpdateNotificationJobStatusParams{
		ID:     id,
		Status: status,
		RunAt:  pgconv.TimePtrToPgtype(runAt),
	}
	if lastError != nil {
		params.LastError = pgtype.Text{String: *lastError, Valid: true}
	}

	if err := s.queries.UpdateNotificationJobStatus(ctx, s.db, params); err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	return nil
}

func rowToJob(row query.NotificationJobs) shared.Job {
	job := shared.Job{
		ID:        row.ID,
		Kind:      row.Kind,
		Topic:     row.Topic,
		Key:       row.MessageKey,
		Payload:   row.Payload,
		RunAt:     pgconv.TimeFromPgtype(row.RunAt),
		Attempts:  int(row.Attempts),
		Status:    row.Status,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if row.LastError.Valid {
		job.LastError = &row.LastError.String
	}
	return job
}
