package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createNotificationJob = `-- name: CreateNotificationJob :exec
INSERT INTO notification_jobs (kind, topic, message_key, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateNotificationJobParams struct {
	Kind       string             `json:"kind"`
	Topic      string             `json:"topic"`
	MessageKey string             `json:"message_key"`
	Payload    []byte             `json:"payload"`
	RunAt      pgtype.Timestamptz `json:"run_at"`
	Status     string             `json:"status"`
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob,
		arg.Kind,
		arg.Topic,
		arg.MessageKey,
		arg.Payload,
		arg.RunAt,
		arg.Status,
	)
	return err
}

const claimDueNotificationJobs = `-- name: ClaimDueNotificationJobs :many
UPDATE notification_jobs
SET status = 'processing', attempts = attempts + 1, updated_at = $1
WHERE id IN (
    SELECT id FROM notification_jobs
    WHERE (status = 'queued' AND run_at <= $1)
       OR (status = 'processing' AND updated_at < $3)
    ORDER BY run_at, id
    LIMIT $2
    FOR UPDATE SKIP LOCKED
)
RETURNING id, kind, topic, message_key, payload, run_at, attempts, status, last_error, created_at, updated_at
`

type ClaimDueNotificationJobsParams struct {
	Now         pgtype.Timestamptz `json:"now"`
	Limit       int32              `json:"limit"`
	StaleBefore pgtype.Timestamptz `json:"stale_before"`
}

// ClaimDueNotificationJobs moves due jobs, and processing jobs whose claim went stale, to
// processing; concurrent workers skip each other's rows.
func (q *Queries) ClaimDueNotificationJobs(ctx context.Context, db DBTX, arg ClaimDueNotificationJobsParams) ([]NotificationJobs, error) {
	rows, err := db.Query(ctx, claimDueNotificationJobs, arg.Now, arg.Limit, arg.StaleBefore)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []NotificationJobs
	for rows.Next() {
		var i NotificationJobs
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.Topic,
			&i.MessageKey,
			&i.Payload,
			&i.RunAt,
			&i.Attempts,
			&i.Status,
			&i.LastError,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateNotificationJobStatus = `-- name: UpdateNotificationJobStatus :exec
UPDATE notification_jobs
SET status = $2, last_error = $3, run_at = COALESCE($4, run_at), updated_at = now()
WHERE id = $1
`

type UpdateNotificationJobStatusParams struct {
	ID        uuid.UUID          `json:"id"`
	Status    string             `json:"status"`
	LastError pgtype.Text        `json:"last_error"`
	RunAt     pgtype.Timestamptz `json:"run_at"`
}

func (q *Queries) UpdateNotificationJobStatus(ctx context.Context, db DBTX, arg UpdateNotificationJobStatusParams) error {
	_, err := db.Exec(ctx, updateNotificationJobStatus, arg.ID, arg.Status, arg.LastError, arg.RunAt)
	return err
}
