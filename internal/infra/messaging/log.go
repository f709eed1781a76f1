package messaging

import (
	"context"
	"log/slog"
)

// LogPublisher writes events to the application log; used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}
	p.logger.InfoContext(ctx, "event published",
		"topic", msg.Topic,
		"key", msg.Key,
		"kind", msg.Headers[HeaderKind],
		"payload", string(msg.Value))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
