//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// LocationID returns the id at the end of the Location header, which must start with prefix.
func LocationID(t *testing.T, w *httptest.ResponseRecorder, prefix string) uuid.UUID {
	t.Helper()

	loc := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(loc, prefix), "Location %q does not start with %q", loc, prefix)
	id, err := uuid.Parse(strings.TrimPrefix(loc, prefix))
	require.NoError(t, err, "Location %q does not end with an id", loc)
	return id
}
