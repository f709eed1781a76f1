package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"car-rental/internal/pkg/config"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
)

// messageWriter is the slice of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer       messageWriter
	defaultTopic string
	closed       bool
	mu           sync.RWMutex
}

func NewKafkaPublisher(cfg config.KafkaConfig) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("at least one broker is required")
	}
	if cfg.Topic == "" {
		return nil, errors.New("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr: kafka.TCP(cfg.Brokers...),
		// hash by key keeps one car's events in order
		Balancer:     &kafka.Hash{},
		RequiredAcks: requiredAcks(cfg.RequiredAcks),
		Compression:  compression(cfg.Compression),
		MaxAttempts:  cfg.MaxAttempts,
		BatchTimeout: cfg.BatchTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			slog.Error("kafka writer error", "detail", fmt.Sprintf(msg, args...))
		}),
	}

	return newKafkaPublisher(writer, cfg.Topic), nil
}

func newKafkaPublisher(w messageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: w, defaultTopic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, msg Message) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}
	if err := msg.validate(); err != nil {
		return err
	}

	topic := msg.Topic
	if topic == "" {
		topic = p.defaultTopic
	}
	kmsg := kafka.Message{
		Topic: topic,
		Key:   []byte(msg.Key),
		Value: msg.Value,
		Time:  msg.Timestamp,
	}
	for k, v := range msg.Headers {
		kmsg.Headers = append(kmsg.Headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	if err := p.writer.WriteMessages(ctx, kmsg); err != nil {
		return fmt.Errorf("failed to write message to %s: %w", topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

func compression(name string) compress.Compression {
	switch name {
	case "gzip":
		return compress.Gzip
	case "lz4":
		return compress.Lz4
	case "zstd":
		return compress.Zstd
	case "none":
		return compress.None
	default:
		return compress.Snappy
	}
}

func requiredAcks(v int) kafka.RequiredAcks {
	switch v {
	case 0:
		return kafka.RequireNone
	case 1:
		return kafka.RequireOne
	default:
		return kafka.RequireAll
	}
}
