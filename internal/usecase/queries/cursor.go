package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	cursorData := fmt.Sprintf("%s:%d-%s", CursorVersionV1, t.UnixMicro(), id.String())
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil, fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor encoding: %w", err)
	}
	decodedStr := string(decoded)
	if !strings.HasPrefix(decodedStr, CursorVersionV1+":") {
		return time.Time{}, uuid.Nil, fmt.Errorf("unsupported cursor version")
	}
	return parseVersionedCursor(decodedStr)
}

func parseVersionedCursor(cursorData string) (time.Time, uuid.UUID, error) {
	payload := strings.TrimPrefix(cursorData, CursorVersionV1+":")

	parts := strings.SplitN(payload, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor format: expected '<micros>-<uuid>'")
	}

	timestamp, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	id, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid UUID: %w", err)
	}

	return time.UnixMicro(timestamp).UTC(), id, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

// Keyset is the decoded position of a (created_at DESC, id DESC) listing.
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

func (c *Cursor) Keyset() (*Keyset, error) {
	if c == nil || c.After == "" {
		return nil, nil
	}
	t, id, err := DecodeAfterCursor(c.After)
	if err != nil {
		return nil, err
	}
	return &Keyset{CreatedAt: t, ID: id}, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
