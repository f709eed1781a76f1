// Package messaging publishes outbox jobs to the event broker.
package messaging

import (
	"errors"
	"time"
)

var (
	ErrPublisherClosed = errors.New("publisher is closed")
	ErrEmptyKey        = errors.New("message key cannot be empty")
	ErrEmptyValue      = errors.New("message value cannot be empty")
)

type Message struct {
	Topic     string
	Key       string
	Value     []byte
	Headers   map[string]string
	Timestamp time.Time
}

const (
	HeaderKind  = "kind"
	HeaderJobID = "job-id"
)

func (m Message) validate() error {
	if m.Key == "" {
		return ErrEmptyKey
	}
	if len(m.Value) == 0 {
		return ErrEmptyValue
	}
	return nil
}
