package components

import (
	"log/slog"

	"car-rental/internal/infra/memstore"
	"car-rental/internal/usecase/outbox"
	"car-rental/internal/usecase/queries"
	"car-rental/internal/usecase/shared"

	"go.uber.org/fx"
)

// MemoryModule backs every store with one in-process memstore.Store. Data is lost on exit.
var MemoryModule = fx.Module("persistence/memory",
	fx.Provide(
		newMemoryStore,
		func(s *memstore.Store) shared.UnitOfWork { return s },
		func(s *memstore.Store) queries.CarReadStore { return s.CarReads() },
		func(s *memstore.Store) (queries.ReservationReadStore, queries.AvailabilityReadStore) {
			reads := s.ReservationReads()
			return reads, reads
		},
		func(s *memstore.Store) outbox.JobStore { return s.Jobs() },
	),
)

func newMemoryStore(logger *slog.Logger) *memstore.Store {
	logger.Warn("using in-memory store; reservations are not persisted")
	return memstore.New()
}
