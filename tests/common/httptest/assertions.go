//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type errorBody struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"requestId"`
	} `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// AssertErrorResponse checks the status and that the error message contains expectedErrorMsg.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	body := decodeError(t, w, expectedStatus)
	if expectedErrorMsg != "" {
		assert.Contains(t, body.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

// AssertErrorCode checks the status and the machine readable error code.
func AssertErrorCode(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedCode string) {
	t.Helper()

	body := decodeError(t, w, expectedStatus)
	assert.Equal(t, expectedCode, body.Error.Code, "error code mismatch: %s", w.Body.String())
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) errorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var body errorBody
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))
	return body
}
