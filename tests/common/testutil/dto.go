//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap turns a request DTO into its JSON object form so tests can break single fields.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key to value; a nil value removes the key.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

func Without(keys ...string) func(m map[string]any) {
	return func(m map[string]any) {
		for _, k := range keys {
			delete(m, k)
		}
	}
}
