package repository

import (
	"context"

	"car-rental/internal/infra"
	"car-rental/internal/infra/query"
	"car-rental/internal/pkg/pgconv"
	"car-rental/internal/usecase/shared"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db query.DBTX, arg query.CreateNotificationJobParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      query.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db query.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, job shared.NewJob) error {
	params := query.CreateNotificationJobParams{
		Kind:       job.Kind,
		Topic:      job.Topic,
		MessageKey: job.Key,
		Payload:    job.Payload,
		RunAt:      pgconv.TimeToPgtype(job.RunAt),
		Status:     shared.JobStatusQueued,
	}

	err := r.queries.CreateNotificationJob(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}
