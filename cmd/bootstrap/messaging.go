package bootstrap

import (
	"context"
	"log/slog"

	"car-rental/internal/infra/messaging"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/config"
	"car-rental/internal/usecase/outbox"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
		NewDispatcher,
	),
	fx.Invoke(startDispatcher),
)

// NewPublisher falls back to logging events when Kafka is disabled.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (outbox.Publisher, error) {
	if !cfg.Kafka.Enabled {
		return messaging.NewLogPublisher(logger), nil
	}

	pub, err := messaging.NewKafkaPublisher(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	logger.Info("kafka publisher configured", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	return pub, nil
}

func NewDispatcher(jobs outbox.JobStore, pub outbox.Publisher, clk clock.Clock, cfg config.Config) *outbox.Dispatcher {
	return outbox.NewDispatcher(jobs, pub, clk, cfg.Outbox)
}

func startDispatcher(lc fx.Lifecycle, d *outbox.Dispatcher, cfg config.Config) {
	if !cfg.Outbox.Enabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: d.Start,
		OnStop:  d.Stop,
	})
}
