package readstore

import (
	"math"
	"time"

	"car-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func optionalText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func optionalTime(t *time.Time) pgtype.Timestamptz {
	return pgconv.TimePtrToPgtype(t)
}

func optionalUUID(id *uuid.UUID) pgtype.UUID {
	return pgconv.UUIDPtrToPgtype(id)
}

func clampOffset(offset int) int32 {
	if offset < 0 {
		return 0
	}
	if offset > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(offset) // #nosec G115 -- clamped above
}
